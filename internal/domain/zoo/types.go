package zoo

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Rarity is ordered: Common < Rare < Epic < Legendary.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

type HabitatType string

const (
	HabitatSavanna HabitatType = "Savanna"
	HabitatJungle  HabitatType = "Jungle"
	HabitatPolar   HabitatType = "Polar"
	HabitatAquatic HabitatType = "Aquatic"
	HabitatForest  HabitatType = "Forest"
	HabitatGeneral HabitatType = "General"
)

type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherNight  Weather = "night"
)

type Currency string

const (
	CurrencyGold    Currency = "gold"
	CurrencyDiamond Currency = "diamond"
)

type StructureCategory string

const (
	CategoryRoad       StructureCategory = "road"
	CategoryHabitat    StructureCategory = "habitat"
	CategoryFacility   StructureCategory = "facility"
	CategoryDecoration StructureCategory = "decoration"
)

type Animal struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Species     string      `json:"species"`
	HabitatType HabitatType `json:"habitatType"`
	Image       string      `json:"image"`
	Health      int         `json:"health"`
	Happiness   int         `json:"happiness"`
	Gender      Gender      `json:"gender"`
	Rarity      Rarity      `json:"rarity"`
	Description string      `json:"description,omitempty"`
	IsBornInZoo bool        `json:"isBornInZoo"`
}

// StructureTemplate is an immutable catalog entry; placed structures embed it
// by value so a save file stays self-contained.
type StructureTemplate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Cost        int               `json:"cost"`
	Currency    Currency          `json:"currency"`
	Icon        string            `json:"icon"`
	Category    StructureCategory `json:"type"`
	HabitatType HabitatType       `json:"habitatType,omitempty"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
}

type PlacedStructure struct {
	InstanceID string            `json:"instanceId"`
	ItemID     string            `json:"itemId"`
	X          int               `json:"x"`
	Y          int               `json:"y"`
	Template   StructureTemplate `json:"buildingData"`
}

type RewardKind string

const (
	RewardGold    RewardKind = "gold"
	RewardDiamond RewardKind = "diamond"
	RewardXP      RewardKind = "xp"
)

type Reward struct {
	Kind   RewardKind `json:"type"`
	Amount int        `json:"amount"`
}

type TaskKind string

const (
	TaskDaily       TaskKind = "daily"
	TaskEvent       TaskKind = "event"
	TaskAchievement TaskKind = "achievement"
)

type Task struct {
	ID          string   `json:"id"`
	Kind        TaskKind `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Progress    int      `json:"progress"`
	MaxProgress int      `json:"maxProgress"`
	Rewards     []Reward `json:"rewards"`
	Completed   bool     `json:"completed"`
}

// MarketListing is a purchasable species; not part of WorldState.
type MarketListing struct {
	ID          string      `json:"id"`
	Species     string      `json:"species"`
	Cost        int         `json:"cost"`
	MinLevel    int         `json:"minLevel"`
	HabitatType HabitatType `json:"habitatType"`
	Rarity      Rarity      `json:"rarity"`
	Image       string      `json:"image"`
}

type ExplorationRegion struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cost        int         `json:"cost"`
	MinLevel    int         `json:"minLevel"`
	HabitatType HabitatType `json:"habitatType"`
	Species     []string    `json:"availableAnimals"`
}

type SpecialEvent struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	RewardText       string      `json:"rewardText"`
	RewardSpecies    string      `json:"rewardSpecies"`
	RewardHabitat    HabitatType `json:"rewardHabitat"`
	RewardRarity     Rarity      `json:"rewardRarity"`
	RewardImage      string      `json:"rewardImage"`
	RequiredProgress int         `json:"requiredProgress"`
	CurrentProgress  int         `json:"currentProgress"`
}

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// WorldState is the complete mutable game snapshot. It is owned by the
// simulation loop; every tick and player action mutates it in place on that
// loop, so no field carries its own synchronization.
type WorldState struct {
	Gold         int               `json:"gold"`
	Diamonds     int               `json:"diamonds"`
	XP           int               `json:"xp"`
	Level        int               `json:"level"`
	ZooName      string            `json:"zooName"`
	TicketPrice  float64           `json:"ticketPrice"`
	Animals      []Animal          `json:"myAnimals"`
	Structures   []PlacedStructure `json:"placedItems"`
	Tasks        []Task            `json:"tasks"`
	MapLevel     int               `json:"mapLevel"`
	Weather      Weather           `json:"weather"`
	IsDarkMode   bool              `json:"isDarkMode"`
	SoundEnabled bool              `json:"soundEnabled"`
	MusicEnabled bool              `json:"musicEnabled"`
}

// Clone deep-copies the world so a snapshot can leave the simulation loop
// without aliasing the live slices.
func (w *WorldState) Clone() WorldState {
	out := *w
	out.Animals = append([]Animal(nil), w.Animals...)
	out.Structures = append([]PlacedStructure(nil), w.Structures...)
	out.Tasks = make([]Task, len(w.Tasks))
	for i, t := range w.Tasks {
		t.Rewards = append([]Reward(nil), t.Rewards...)
		out.Tasks[i] = t
	}
	return out
}

func (w *WorldState) AnimalByID(id string) *Animal {
	for i := range w.Animals {
		if w.Animals[i].ID == id {
			return &w.Animals[i]
		}
	}
	return nil
}

func (w *WorldState) StructureByInstanceID(id string) *PlacedStructure {
	for i := range w.Structures {
		if w.Structures[i].InstanceID == id {
			return &w.Structures[i]
		}
	}
	return nil
}

func (w *WorldState) TaskByID(id string) *Task {
	for i := range w.Tasks {
		if w.Tasks[i].ID == id {
			return &w.Tasks[i]
		}
	}
	return nil
}
