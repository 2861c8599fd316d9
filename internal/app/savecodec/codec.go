// Package savecodec serializes WorldState to a JSON save blob and rebuilds
// a valid WorldState from arbitrary untrusted input. Decode never fails:
// every missing, mistyped or malformed field falls back to a documented
// default, and the caller learns whether anything had to be repaired.
package savecodec

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"zooverse/internal/domain/zoo"
)

type LoadStatus int

const (
	// LoadOK: every field parsed cleanly.
	LoadOK LoadStatus = iota
	// LoadRecovered: the blob was malformed in whole or in part and one or
	// more fields were replaced with defaults.
	LoadRecovered
)

const (
	unknownName    = "İsimsiz"
	unknownSpecies = "Bilinmeyen"
	unknownImage   = "https://placehold.co/400x400?text=?"
)

// Encode produces the complete textual snapshot of the world. The key set
// is the save-slot contract; Decode understands exactly these keys.
func Encode(w *zoo.WorldState) ([]byte, error) {
	blob, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("encode save: %w", err)
	}
	return blob, nil
}

// Decode rebuilds a WorldState from a save blob. Any shape of input is
// accepted; a blob that is not a JSON object yields the fresh-start world.
func Decode(raw []byte) (zoo.WorldState, LoadStatus) {
	root := gjson.ParseBytes(raw)
	if !gjson.ValidBytes(raw) || !root.IsObject() {
		return zoo.FreshWorld(), LoadRecovered
	}

	d := decoder{root: root}

	w := zoo.WorldState{
		Gold:        d.intField("gold", zoo.DefaultGold),
		Diamonds:    d.intField("diamonds", zoo.DefaultDiamonds),
		XP:          d.intField("xp", zoo.DefaultXP),
		Level:       d.intField("level", zoo.DefaultLevel),
		ZooName:     d.stringField("zooName", zoo.DefaultZooName),
		TicketPrice: d.floatField("ticketPrice", zoo.DefaultTicketPrice),
		MapLevel:    d.intField("mapLevel", zoo.DefaultMapLevel),
	}

	w.Animals = d.animals()
	w.Structures = d.structures()
	w.Tasks = d.tasks()
	w.Weather = d.weather()
	w.IsDarkMode = d.boolField("isDarkMode", false)
	w.SoundEnabled = d.boolField("soundEnabled", true)
	w.MusicEnabled = d.boolField("musicEnabled", true)

	if d.repairs > 0 {
		return w, LoadRecovered
	}
	return w, LoadOK
}

type decoder struct {
	root    gjson.Result
	repairs int
}

func (d *decoder) intField(key string, def int) int {
	v := d.root.Get(key)
	if v.Type != gjson.Number {
		d.repairs++
		return def
	}
	return int(v.Int())
}

func (d *decoder) floatField(key string, def float64) float64 {
	v := d.root.Get(key)
	if v.Type != gjson.Number {
		d.repairs++
		return def
	}
	return v.Float()
}

// stringField falls back on anything that is not a non-empty string,
// matching the save format's truthiness rule.
func (d *decoder) stringField(key, def string) string {
	v := d.root.Get(key)
	if v.Type != gjson.String || v.Str == "" {
		d.repairs++
		return def
	}
	return v.Str
}

// boolField preserves an explicit false; only a missing or non-boolean
// value falls back to the default.
func (d *decoder) boolField(key string, def bool) bool {
	v := d.root.Get(key)
	switch v.Type {
	case gjson.True:
		return true
	case gjson.False:
		return false
	default:
		d.repairs++
		return def
	}
}

func (d *decoder) animals() []zoo.Animal {
	v := d.root.Get("myAnimals")
	if !v.IsArray() {
		d.repairs++
		return zoo.StarterRoster()
	}
	out := []zoo.Animal{}
	v.ForEach(func(_, item gjson.Result) bool {
		out = append(out, d.repairAnimal(item))
		return true
	})
	return out
}

// repairAnimal maps one roster element through the per-field repair pass.
// Nothing is dropped: even an empty object becomes a healthy unknown.
func (d *decoder) repairAnimal(item gjson.Result) zoo.Animal {
	a := zoo.Animal{
		ID:          d.elemString(item, "id", ""),
		Name:        d.elemString(item, "name", unknownName),
		Species:     d.elemString(item, "species", unknownSpecies),
		HabitatType: zoo.HabitatType(d.elemString(item, "habitatType", string(zoo.HabitatSavanna))),
		Image:       d.elemString(item, "image", unknownImage),
		Health:      d.elemInt(item, "health", zoo.DefaultStatValue),
		Happiness:   d.elemInt(item, "happiness", zoo.DefaultStatValue),
		Gender:      zoo.Gender(d.elemString(item, "gender", string(zoo.GenderMale))),
		Rarity:      zoo.Rarity(d.elemString(item, "rarity", string(zoo.RarityCommon))),
		Description: item.Get("description").Str,
		IsBornInZoo: item.Get("isBornInZoo").Bool(),
	}
	if a.ID == "" {
		a.ID = "ani-" + uuid.NewString()
	}
	return a
}

func (d *decoder) structures() []zoo.PlacedStructure {
	v := d.root.Get("placedItems")
	if !v.IsArray() {
		d.repairs++
		return []zoo.PlacedStructure{}
	}
	out := []zoo.PlacedStructure{}
	v.ForEach(func(_, item gjson.Result) bool {
		tmpl := item.Get("buildingData")
		if !tmpl.IsObject() {
			// An element without an embedded template cannot be rendered or
			// collision-tested; drop it.
			d.repairs++
			return true
		}
		s := zoo.PlacedStructure{
			InstanceID: d.elemString(item, "instanceId", ""),
			ItemID:     item.Get("itemId").Str,
			X:          d.elemInt(item, "x", 0),
			Y:          d.elemInt(item, "y", 0),
			Template: zoo.StructureTemplate{
				ID:          tmpl.Get("id").Str,
				Name:        tmpl.Get("name").Str,
				Cost:        int(tmpl.Get("cost").Int()),
				Currency:    zoo.Currency(d.elemString(tmpl, "currency", string(zoo.CurrencyGold))),
				Icon:        tmpl.Get("icon").Str,
				Category:    zoo.StructureCategory(d.elemString(tmpl, "type", string(zoo.CategoryDecoration))),
				HabitatType: zoo.HabitatType(tmpl.Get("habitatType").Str),
				Width:       d.elemPositiveInt(tmpl, "width", 1),
				Height:      d.elemPositiveInt(tmpl, "height", 1),
			},
		}
		if s.InstanceID == "" {
			s.InstanceID = "build-" + uuid.NewString()
		}
		out = append(out, s)
		return true
	})
	return out
}

func (d *decoder) tasks() []zoo.Task {
	v := d.root.Get("tasks")
	if !v.IsArray() {
		d.repairs++
		return zoo.DefaultTasks()
	}
	out := []zoo.Task{}
	v.ForEach(func(_, item gjson.Result) bool {
		t := zoo.Task{
			ID:          item.Get("id").Str,
			Kind:        zoo.TaskKind(item.Get("type").Str),
			Title:       item.Get("title").Str,
			Description: item.Get("description").Str,
			Icon:        item.Get("icon").Str,
			Progress:    int(item.Get("progress").Int()),
			MaxProgress: int(item.Get("maxProgress").Int()),
			Completed:   item.Get("completed").Bool(),
		}
		item.Get("rewards").ForEach(func(_, r gjson.Result) bool {
			t.Rewards = append(t.Rewards, zoo.Reward{
				Kind:   zoo.RewardKind(r.Get("type").Str),
				Amount: int(r.Get("amount").Int()),
			})
			return true
		})
		out = append(out, t)
		return true
	})
	return out
}

func (d *decoder) weather() zoo.Weather {
	switch zoo.Weather(d.root.Get("weather").Str) {
	case zoo.WeatherSunny:
		return zoo.WeatherSunny
	case zoo.WeatherCloudy:
		return zoo.WeatherCloudy
	case zoo.WeatherRainy:
		return zoo.WeatherRainy
	case zoo.WeatherNight:
		return zoo.WeatherNight
	default:
		// Weather is ambient and regenerates on the next cycle; an unknown
		// value silently resets rather than counting as a repair.
		return zoo.WeatherSunny
	}
}

func (d *decoder) elemString(item gjson.Result, key, def string) string {
	v := item.Get(key)
	if v.Type != gjson.String || v.Str == "" {
		if def != "" || v.Type != gjson.String {
			d.repairs++
		}
		return def
	}
	return v.Str
}

func (d *decoder) elemInt(item gjson.Result, key string, def int) int {
	v := item.Get(key)
	if v.Type != gjson.Number {
		d.repairs++
		return def
	}
	return int(v.Int())
}

func (d *decoder) elemPositiveInt(item gjson.Result, key string, def int) int {
	v := item.Get(key)
	if v.Type != gjson.Number || v.Int() <= 0 {
		d.repairs++
		return def
	}
	return int(v.Int())
}
