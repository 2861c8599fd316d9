// Package game implements every player-facing operation against the
// simulated world. All mutations are posted onto the simulation loop so
// they interleave with ticks without locking; all rejections happen before
// any state changes and surface as sentinel errors plus a notification.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"zooverse/internal/app/ports"
	"zooverse/internal/app/savecodec"
	"zooverse/internal/app/sim"
	"zooverse/internal/domain/zoo"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNoSaveFound    = errors.New("no usable save found")
	ErrLevelTooLow    = errors.New("zoo level too low")
)

type UseCase struct {
	Loop     *sim.Loop
	Saves    ports.SaveRepository
	Journal  ports.JournalRepository
	Notifier ports.Notifier
	Confirm  ports.Confirmer
	Names    ports.NamePrompter
	Catalog  ports.CatalogProvider
	Metrics  ports.TickRecorder
	Rand     *rand.Rand
	Now      func() time.Time
	Slot     string

	mu             sync.Mutex
	bonusAvailable bool
}

// StartNew enters a fresh world and arms the daily bonus.
func (u *UseCase) StartNew(ctx context.Context) error {
	world := zoo.FreshWorld()
	if err := u.Loop.Start(&world); err != nil {
		return err
	}
	u.mu.Lock()
	u.bonusAvailable = true
	u.mu.Unlock()
	u.notify("Yeni hayvanat bahçen hazır!", zoo.SeveritySuccess)
	return nil
}

// Continue loads the save slot and enters the world. A missing or unreadable
// slot rejects with ErrNoSaveFound; a malformed blob is recovered with
// defaults and still entered, with a soft warning.
func (u *UseCase) Continue(ctx context.Context) error {
	blob, err := u.Saves.LoadBlob(ctx, u.Slot)
	if err != nil {
		// Storage failures are deliberately indistinguishable from a
		// missing save: nothing usable could be read.
		u.notify("Kayıt bulunamadı veya bozuk. Yeni oyun önerilir.", zoo.SeverityError)
		return ErrNoSaveFound
	}
	world, status := savecodec.Decode(blob)
	if err := u.Loop.Start(&world); err != nil {
		return err
	}
	u.mu.Lock()
	u.bonusAvailable = false
	u.mu.Unlock()
	if status == savecodec.LoadRecovered {
		u.notify("Kayıt dosyası kısmen bozuktu, eksikler varsayılanlarla tamamlandı.", zoo.SeverityWarning)
	} else {
		u.notify("Oyun Yüklendi!", zoo.SeveritySuccess)
	}
	return nil
}

// Quit saves and stops every periodic trigger; the world is no longer
// observed afterwards. Safe to call when already stopped.
func (u *UseCase) Quit(ctx context.Context) {
	u.Loop.Stop()
}

func (u *UseCase) SaveNow(ctx context.Context) error {
	return u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		blob, err := savecodec.Encode(w)
		if err != nil {
			return err
		}
		if err := u.Saves.SaveBlob(ctx, u.Slot, blob); err != nil {
			return fmt.Errorf("save slot %s: %w", u.Slot, err)
		}
		u.notify("Oyun Kaydedildi.", zoo.SeveritySuccess)
		return nil
	})
}

// ResetSave deletes the slot after confirmation. Rejected while a world is
// running. Returns false when the confirmation was declined.
func (u *UseCase) ResetSave(ctx context.Context) (bool, error) {
	if u.Loop.Running() {
		return false, ports.ErrConflict
	}
	if !u.Confirm.Confirm(ctx, "TÜM VERİLER SİLİNECEK! Emin misin? Bu işlem geri alınamaz.") {
		return false, nil
	}
	if err := u.Saves.DeleteBlob(ctx, u.Slot); err != nil && !errors.Is(err, ports.ErrNotFound) {
		return false, err
	}
	return true, nil
}

func (u *UseCase) Snapshot(ctx context.Context) (Snapshot, error) {
	var out Snapshot
	err := u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		out.World = w.Clone()
		out.Running = true
		return nil
	})
	if errors.Is(err, sim.ErrNotRunning) {
		return Snapshot{}, nil
	}
	return out, err
}

// PlaceStructure validates the footprint, charges the declared currency and
// appends the structure. Building grants xp, so progression runs after.
func (u *UseCase) PlaceStructure(ctx context.Context, itemID string, x, y int) error {
	tmpl, err := u.buildingByID(ctx, itemID)
	if err != nil {
		return err
	}
	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		if _, _, err := zoo.ValidatePlacement(tmpl, x, y, w.Structures); err != nil {
			u.notify("Burada başka bir yapı var!", zoo.SeverityError)
			return err
		}
		if err := zoo.Charge(w, tmpl.Cost, tmpl.Currency); err != nil {
			u.notifyInsufficient(tmpl.Currency)
			return err
		}
		if _, err := zoo.Place(w, "build-"+uuid.NewString(), tmpl, x, y); err != nil {
			return err
		}
		w.XP += zoo.BuildXPReward
		u.checkProgression(w)
		u.notify("İnşaat Tamamlandı", zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("build", err)
	return err
}

// Demolish removes a structure and refunds per the road/half rule. The
// confirmation collaborator is consulted before the core mutation runs.
func (u *UseCase) Demolish(ctx context.Context, instanceID string) (refund int, demolished bool, err error) {
	var tmpl zoo.StructureTemplate
	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		s := w.StructureByInstanceID(instanceID)
		if s == nil {
			return ports.ErrNotFound
		}
		tmpl = s.Template
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	prompt := fmt.Sprintf("Bu yapıyı yıkmak istiyor musun? %d Altın iade edilecek.", zoo.DemolishRefund(tmpl))
	if !u.Confirm.Confirm(ctx, prompt) {
		return 0, false, nil
	}

	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		r, ok := zoo.Demolish(w, instanceID)
		if !ok {
			return ports.ErrNotFound
		}
		refund = r
		u.notify("Yapı yıkıldı.", zoo.SeverityWarning)
		return nil
	})
	u.recordAction("demolish", err)
	if err != nil {
		return 0, false, err
	}
	return refund, true, nil
}

func (u *UseCase) ExpandMap(ctx context.Context) error {
	err := u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		cost := zoo.MapExpandCost(w.MapLevel)
		if err := zoo.Charge(w, cost, zoo.CurrencyGold); err != nil {
			u.notifyInsufficient(zoo.CurrencyGold)
			return err
		}
		w.MapLevel++
		u.notify("Harita Genişletildi!", zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("expand_map", err)
	return err
}

func (u *UseCase) BuyAnimal(ctx context.Context, marketID string) (zoo.Animal, error) {
	listing, err := u.listingByID(ctx, marketID)
	if err != nil {
		return zoo.Animal{}, err
	}
	var bought zoo.Animal
	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		if w.Level < listing.MinLevel {
			u.notify("Seviyen bu hayvan için yetersiz!", zoo.SeverityError)
			return ErrLevelTooLow
		}
		if err := zoo.Charge(w, listing.Cost, zoo.CurrencyGold); err != nil {
			u.notify("Yetersiz Bakiye!", zoo.SeverityError)
			return err
		}
		bought = zoo.NewAnimalFromListing(listing, u.Rand)
		w.Animals = append(w.Animals, bought)
		u.notify("Yeni Hayvan: "+bought.Species, zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("buy_animal", err)
	return bought, err
}

// Explore rolls a safari expedition: 60% a wild animal of the region, else
// a 50/50 split between a gold treasure and survey xp.
func (u *UseCase) Explore(ctx context.Context, regionID string) (ExploreResult, error) {
	region, err := u.regionByID(ctx, regionID)
	if err != nil {
		return ExploreResult{}, err
	}
	market := u.Catalog.Market(ctx)

	var result ExploreResult
	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		if w.Level < region.MinLevel {
			u.notify("Seviyen bu bölge için yetersiz!", zoo.SeverityError)
			return ErrLevelTooLow
		}
		if err := zoo.Charge(w, region.Cost, zoo.CurrencyGold); err != nil {
			u.notify("Yetersiz Bakiye!", zoo.SeverityError)
			return err
		}

		if u.Rand.Float64() > zoo.ExploreFindChance {
			species := region.Species[u.Rand.Intn(len(region.Species))]
			if listing := zoo.MarketListingBySpecies(market, species); listing != nil {
				found := zoo.NewAnimalFromListing(*listing, u.Rand)
				w.Animals = append(w.Animals, found)
				result = ExploreResult{
					Message: fmt.Sprintf("Harika! Vahşi bir %s ile karşılaştın.", species),
					Animal:  &found,
				}
				u.notify(result.Message, zoo.SeveritySuccess)
				return nil
			}
			w.XP += zoo.ExploreTrailXPReward
			result = ExploreResult{
				Message:    "İlginç ayak izleri buldun ama hayvan kaçtı.",
				RewardKind: zoo.RewardXP,
				Amount:     zoo.ExploreTrailXPReward,
			}
		} else if u.Rand.Float64() > zoo.ExploreTreasureChance {
			amount := region.Cost / 2
			w.Gold += amount
			result = ExploreResult{
				Message:    fmt.Sprintf("Eski bir hazine sandığı buldun! (%d Altın)", amount),
				RewardKind: zoo.RewardGold,
				Amount:     amount,
			}
		} else {
			w.XP += zoo.ExploreMapXPReward
			result = ExploreResult{
				Message:    fmt.Sprintf("Bölgeyi haritalandırdın. (%d XP)", zoo.ExploreMapXPReward),
				RewardKind: zoo.RewardXP,
				Amount:     zoo.ExploreMapXPReward,
			}
		}
		u.checkProgression(w)
		u.notify(result.Message, zoo.SeverityInfo)
		return nil
	})
	u.recordAction("explore", err)
	return result, err
}

func (u *UseCase) CareForAnimal(ctx context.Context, animalID string, action zoo.CareAction) error {
	err := u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		a := w.AnimalByID(animalID)
		if a == nil {
			return ports.ErrNotFound
		}
		if !zoo.ApplyCare(a, action) {
			return ErrInvalidRequest
		}
		u.notify(careMessage(action), zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("care", err)
	return err
}

// ReleaseAnimal frees an animal for a rarity-scaled reward, confirm-gated
// because release is irreversible.
func (u *UseCase) ReleaseAnimal(ctx context.Context, animalID string) (released bool, err error) {
	var name string
	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		a := w.AnimalByID(animalID)
		if a == nil {
			return ports.ErrNotFound
		}
		name = a.Name
		return nil
	})
	if err != nil {
		return false, err
	}

	if !u.Confirm.Confirm(ctx, fmt.Sprintf("%s doğaya salınacak. Geri dönüşü yoktur. Devam mı?", name)) {
		return false, nil
	}

	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		reward, ok := zoo.Release(w, animalID)
		if !ok {
			return ports.ErrNotFound
		}
		u.checkProgression(w)
		u.notify(fmt.Sprintf("%s özgürlüğüne kavuştu! (+%d Gold, +%d XP)", name, reward.Gold, reward.XP), zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("release", err)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Breed pairs the animal with an opposite-gender same-species partner and
// adds a named baby at full vitals. The name comes from the injected
// prompter; a dismissed prompt is a quiet no-op.
func (u *UseCase) Breed(ctx context.Context, animalID string) (zoo.Animal, bool, error) {
	err := u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		parent := w.AnimalByID(animalID)
		if parent == nil {
			return ports.ErrNotFound
		}
		_, err := zoo.FindBreedingPartner(w.Animals, parent)
		return err
	})
	if err != nil {
		if errors.Is(err, zoo.ErrNoEligiblePartner) {
			u.notify("Uygun bir eş bulunamadı (aynı tür, karşı cinsiyet gerekli).", zoo.SeverityError)
		}
		u.recordAction("breed", err)
		return zoo.Animal{}, false, err
	}

	name, ok := u.Names.PromptName(ctx, "Yavruya bir isim ver:")
	if !ok || name == "" {
		return zoo.Animal{}, false, nil
	}

	var baby zoo.Animal
	err = u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		parent := w.AnimalByID(animalID)
		if parent == nil {
			return ports.ErrNotFound
		}
		if _, err := zoo.FindBreedingPartner(w.Animals, parent); err != nil {
			return err
		}
		baby = zoo.NewBaby(parent, name)
		w.Animals = append(w.Animals, baby)
		u.notify("Yeni bir yavru doğdu!", zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("breed", err)
	if err != nil {
		return zoo.Animal{}, false, err
	}
	return baby, true, nil
}

func (u *UseCase) ClaimTask(ctx context.Context, taskID string) error {
	err := u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		t := w.TaskByID(taskID)
		if t == nil {
			return ports.ErrNotFound
		}
		if t.Completed {
			return ports.ErrConflict
		}
		grantedXP := zoo.ApplyRewards(w, t.Rewards)
		t.Completed = true
		if grantedXP {
			u.checkProgression(w)
		}
		u.notify("Görev Ödülü Alındı!", zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("claim_task", err)
	return err
}

func (u *UseCase) ClaimSpecialEvent(ctx context.Context, eventID string) (zoo.Animal, error) {
	var event *zoo.SpecialEvent
	for _, e := range u.Catalog.SpecialEvents(ctx) {
		if e.ID == eventID {
			ev := e
			event = &ev
			break
		}
	}
	if event == nil {
		return zoo.Animal{}, ports.ErrNotFound
	}

	var won zoo.Animal
	err := u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		won = zoo.Animal{
			ID:          "evt-" + uuid.NewString(),
			Name:        event.RewardText,
			Species:     event.RewardSpecies,
			HabitatType: event.RewardHabitat,
			Image:       event.RewardImage,
			Health:      zoo.DefaultStatValue,
			Happiness:   zoo.DefaultStatValue,
			Gender:      zoo.GenderMale,
			Rarity:      event.RewardRarity,
		}
		w.Animals = append(w.Animals, won)
		u.notify(event.RewardText+" kazanıldı!", zoo.SeveritySuccess)
		return nil
	})
	u.recordAction("claim_event", err)
	return won, err
}

// ClaimDailyBonus pays the returning-manager salary once per fresh entry.
func (u *UseCase) ClaimDailyBonus(ctx context.Context) error {
	u.mu.Lock()
	if !u.bonusAvailable {
		u.mu.Unlock()
		return ports.ErrConflict
	}
	u.bonusAvailable = false
	u.mu.Unlock()

	return u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		w.Gold += zoo.DailyBonusGold
		w.Diamonds += zoo.DailyBonusDiamonds
		u.notify("Günlük Hediye alındı!", zoo.SeveritySuccess)
		return nil
	})
}

// Cheat is the original's investor-support developer shortcut.
func (u *UseCase) Cheat(ctx context.Context) error {
	return u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		w.Gold += 10000
		w.Diamonds += 100
		u.notify("Yatırımcı Desteği Alındı (Hile)", zoo.SeveritySuccess)
		return nil
	})
}

func (u *UseCase) UpdateSettings(ctx context.Context, s Settings) error {
	if s.TicketPrice != nil && *s.TicketPrice <= 0 {
		return ErrInvalidRequest
	}
	if s.ZooName != nil && *s.ZooName == "" {
		return ErrInvalidRequest
	}
	return u.Loop.Do(ctx, func(w *zoo.WorldState) error {
		if s.ZooName != nil {
			w.ZooName = *s.ZooName
		}
		if s.TicketPrice != nil {
			w.TicketPrice = *s.TicketPrice
		}
		if s.IsDarkMode != nil {
			w.IsDarkMode = *s.IsDarkMode
		}
		if s.SoundEnabled != nil {
			w.SoundEnabled = *s.SoundEnabled
		}
		if s.MusicEnabled != nil {
			w.MusicEnabled = *s.MusicEnabled
		}
		return nil
	})
}

// checkProgression runs the level-up invariant loop and reports gains. It
// must be called inside the loop, right after any xp-raising mutation.
func (u *UseCase) checkProgression(w *zoo.WorldState) {
	levels := zoo.CheckProgression(w)
	if levels == 0 {
		return
	}
	u.notify("SEVİYE "+strconv.Itoa(w.Level)+"! Tebrikler yönetici, +"+strconv.Itoa(levels*zoo.LevelUpDiamondReward)+" Elmas kazandın.", zoo.SeveritySuccess)
	if u.Journal != nil {
		entry := ports.JournalEntry{
			Slot:       u.Slot,
			Kind:       "level_up",
			Message:    "Seviye " + strconv.Itoa(w.Level),
			Delta:      levels,
			Severity:   zoo.SeveritySuccess,
			OccurredAt: u.now(),
		}
		if err := u.Journal.Append(context.Background(), entry); err != nil {
			log.Printf("journal append: %v", err)
		}
	}
}

func (u *UseCase) buildingByID(ctx context.Context, id string) (zoo.StructureTemplate, error) {
	for _, t := range u.Catalog.Buildings(ctx) {
		if t.ID == id {
			return t, nil
		}
	}
	return zoo.StructureTemplate{}, ports.ErrNotFound
}

func (u *UseCase) listingByID(ctx context.Context, id string) (zoo.MarketListing, error) {
	for _, l := range u.Catalog.Market(ctx) {
		if l.ID == id {
			return l, nil
		}
	}
	return zoo.MarketListing{}, ports.ErrNotFound
}

func (u *UseCase) regionByID(ctx context.Context, id string) (zoo.ExplorationRegion, error) {
	for _, r := range u.Catalog.Regions(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return zoo.ExplorationRegion{}, ports.ErrNotFound
}

func (u *UseCase) notify(message string, severity zoo.Severity) {
	if u.Notifier != nil {
		u.Notifier.Notify(message, severity)
	}
}

func (u *UseCase) notifyInsufficient(c zoo.Currency) {
	if c == zoo.CurrencyDiamond {
		u.notify("Yetersiz Elmas!", zoo.SeverityError)
		return
	}
	u.notify("Yetersiz Altın!", zoo.SeverityError)
}

func (u *UseCase) recordAction(name string, err error) {
	if u.Metrics != nil {
		u.Metrics.RecordAction(name, err == nil)
	}
}

func (u *UseCase) now() time.Time {
	if u.Now != nil {
		return u.Now()
	}
	return time.Now()
}

func careMessage(action zoo.CareAction) string {
	switch action {
	case zoo.CareFeed:
		return "Besleme başarılı!"
	case zoo.CarePlay:
		return "Oyun başarılı!"
	default:
		return "Tedavi başarılı!"
	}
}
