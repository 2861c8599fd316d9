package zoo

import "strconv"

// Built-in catalogs. The static catalog adapter can override buildings,
// market listings and regions from YAML files; everything else is fixed.

func StarterRoster() []Animal {
	return []Animal{
		{
			ID: "init-1", Name: "Zeze", Species: "Zebra", HabitatType: HabitatSavanna,
			Image: animalImage("Zebra"), Health: 90, Happiness: 85,
			Gender: GenderFemale, Rarity: RarityCommon,
			Description: "Zeze, savanların en neşeli zebrasıdır.",
		},
		{
			ID: "init-2", Name: "Çizgi", Species: "Zebra", HabitatType: HabitatSavanna,
			Image: animalImage("Zebra"), Health: 95, Happiness: 80,
			Gender: GenderMale, Rarity: RarityCommon,
			Description: "Çizgi, sürü lideri olmaya aday.",
		},
	}
}

var AnimalNamePool = []string{
	"Boncuk", "Pamuk", "Limon", "Zeytin", "Gölge", "Rüzgar", "Şimşek", "Fıstık", "Karamel", "Benekli",
	"Cesur", "Kral", "Prenses", "Şanslı", "Çiko", "Maviş", "Bambi", "Herkül", "Zeus", "Hera",
	"Atlas", "Duman", "Gece", "Güneş", "Toprak", "Yağmur", "Bulut", "Mars", "Venüs", "Jüpiter",
}

type RandomEvent struct {
	Message  string   `json:"message"`
	Delta    int      `json:"delta"`
	Severity Severity `json:"severity"`
}

var RandomEvents = []RandomEvent{
	{Message: "Okul Gezisi! Ziyaretçiler akın etti.", Delta: 300, Severity: SeveritySuccess},
	{Message: "Hayırsever bir bağış yaptı.", Delta: 500, Severity: SeveritySuccess},
	{Message: "Küçük bir fırtına çıktı. Onarım masrafı.", Delta: -150, Severity: SeverityWarning},
	{Message: "Televizyonda hayvanat bahçen tanıtıldı!", Delta: 250, Severity: SeveritySuccess},
	{Message: "Bir ziyaretçi dondurmasını düşürdü... temizlik lazım.", Delta: -20, Severity: SeverityInfo},
}

// WeatherCycle is the pool the weather ticker draws from; sunny is weighted.
var WeatherCycle = []Weather{WeatherSunny, WeatherCloudy, WeatherRainy, WeatherSunny, WeatherSunny}

func DefaultBuildings() []StructureTemplate {
	return []StructureTemplate{
		{ID: "road-dirt", Name: "Toprak Yol", Cost: 20, Currency: CurrencyGold, Icon: "edit_road", Category: CategoryRoad, Width: 1, Height: 1},
		{ID: "road-gravel", Name: "Çakıl Yol", Cost: 35, Currency: CurrencyGold, Icon: "texture", Category: CategoryRoad, Width: 1, Height: 1},
		{ID: "road-asphalt", Name: "Asfalt Yol", Cost: 50, Currency: CurrencyGold, Icon: "add_road", Category: CategoryRoad, Width: 1, Height: 1},
		{ID: "road-stone", Name: "Taş Yol", Cost: 100, Currency: CurrencyGold, Icon: "grid_view", Category: CategoryRoad, Width: 1, Height: 1},
		{ID: "road-wood", Name: "Tahta İskele", Cost: 75, Currency: CurrencyGold, Icon: "deck", Category: CategoryRoad, Width: 1, Height: 1},
		{ID: "road-mosaic", Name: "Lüks Mozaik", Cost: 200, Currency: CurrencyGold, Icon: "apps", Category: CategoryRoad, Width: 1, Height: 1},

		{ID: "hab-savanna-s", Name: "Küçük Savan", Cost: 400, Currency: CurrencyGold, Icon: "pets", Category: CategoryHabitat, HabitatType: HabitatSavanna, Width: 2, Height: 2},
		{ID: "hab-savanna-l", Name: "Büyük Savan Düzlüğü", Cost: 1200, Currency: CurrencyGold, Icon: "pets", Category: CategoryHabitat, HabitatType: HabitatSavanna, Width: 3, Height: 3},
		{ID: "hab-jungle-s", Name: "Küçük Orman", Cost: 600, Currency: CurrencyGold, Icon: "forest", Category: CategoryHabitat, HabitatType: HabitatJungle, Width: 2, Height: 2},
		{ID: "hab-jungle-l", Name: "Dev Yağmur Ormanı", Cost: 1500, Currency: CurrencyGold, Icon: "forest", Category: CategoryHabitat, HabitatType: HabitatJungle, Width: 3, Height: 3},
		{ID: "hab-polar-s", Name: "Buz Kütlesi", Cost: 800, Currency: CurrencyGold, Icon: "ac_unit", Category: CategoryHabitat, HabitatType: HabitatPolar, Width: 2, Height: 2},
		{ID: "hab-polar-l", Name: "Kutup Buzulu", Cost: 2000, Currency: CurrencyGold, Icon: "ac_unit", Category: CategoryHabitat, HabitatType: HabitatPolar, Width: 3, Height: 3},
		{ID: "hab-aquatic-pool", Name: "Yunus Havuzu", Cost: 1000, Currency: CurrencyGold, Icon: "water", Category: CategoryHabitat, HabitatType: HabitatAquatic, Width: 2, Height: 2},
		{ID: "hab-aquatic-tank", Name: "Dev Okyanus Tankı", Cost: 2500, Currency: CurrencyGold, Icon: "scuba_diving", Category: CategoryHabitat, HabitatType: HabitatAquatic, Width: 3, Height: 3},
		{ID: "hab-forest-s", Name: "Küçük Koru", Cost: 500, Currency: CurrencyGold, Icon: "nature", Category: CategoryHabitat, HabitatType: HabitatForest, Width: 2, Height: 2},
		{ID: "hab-forest-l", Name: "Milli Park Alanı", Cost: 1400, Currency: CurrencyGold, Icon: "nature", Category: CategoryHabitat, HabitatType: HabitatForest, Width: 3, Height: 3},

		{ID: "fac-ticket", Name: "Bilet Gişesi", Cost: 1000, Currency: CurrencyGold, Icon: "local_activity", Category: CategoryFacility, Width: 1, Height: 1},
		{ID: "fac-burger", Name: "Burger Dükkanı", Cost: 1500, Currency: CurrencyGold, Icon: "lunch_dining", Category: CategoryFacility, Width: 1, Height: 1},
		{ID: "fac-wc", Name: "Tuvaletler", Cost: 500, Currency: CurrencyGold, Icon: "wc", Category: CategoryFacility, Width: 1, Height: 1},
		{ID: "fac-icecream", Name: "Dondurma Arabası", Cost: 800, Currency: CurrencyGold, Icon: "icecream", Category: CategoryFacility, Width: 1, Height: 1},
		{ID: "fac-vet", Name: "Veteriner", Cost: 2500, Currency: CurrencyGold, Icon: "local_hospital", Category: CategoryFacility, Width: 2, Height: 2},
		{ID: "fac-security", Name: "Güvenlik Kulübesi", Cost: 600, Currency: CurrencyGold, Icon: "security", Category: CategoryFacility, Width: 1, Height: 1},

		{ID: "dec-bench", Name: "Bank", Cost: 100, Currency: CurrencyGold, Icon: "chair", Category: CategoryDecoration, Width: 1, Height: 1},
		{ID: "dec-lamp", Name: "Lamba", Cost: 150, Currency: CurrencyGold, Icon: "light", Category: CategoryDecoration, Width: 1, Height: 1},
		{ID: "dec-fountain", Name: "Süs Havuzu", Cost: 1000, Currency: CurrencyGold, Icon: "water_drop", Category: CategoryDecoration, Width: 2, Height: 2},
		{ID: "dec-flower", Name: "Çiçeklik", Cost: 200, Currency: CurrencyGold, Icon: "local_florist", Category: CategoryDecoration, Width: 1, Height: 1},
		{ID: "dec-tree", Name: "Ağaç", Cost: 300, Currency: CurrencyGold, Icon: "park", Category: CategoryDecoration, Width: 1, Height: 1},
		{ID: "dec-statue", Name: "Heykel", Cost: 2000, Currency: CurrencyGold, Icon: "emoji_events", Category: CategoryDecoration, Width: 1, Height: 1},
		{ID: "dec-playground", Name: "Oyun Parkı", Cost: 1500, Currency: CurrencyGold, Icon: "attractions", Category: CategoryDecoration, Width: 2, Height: 2},
		{ID: "dec-sign", Name: "Yön Tabelası", Cost: 150, Currency: CurrencyGold, Icon: "signpost", Category: CategoryDecoration, Width: 1, Height: 1},
	}
}

type speciesEntry struct {
	name    string
	habitat HabitatType
	rarity  Rarity
	price   int
	minLvl  int
}

var speciesList = []speciesEntry{
	{"Aslan", HabitatSavanna, RarityRare, 500, 3},
	{"Zebra", HabitatSavanna, RarityCommon, 300, 1},
	{"Zürafa", HabitatSavanna, RarityRare, 600, 4},
	{"Fil", HabitatSavanna, RarityEpic, 1000, 8},
	{"Gergedan", HabitatSavanna, RarityEpic, 950, 9},
	{"Su Aygırı", HabitatSavanna, RarityRare, 700, 6},
	{"Çita", HabitatSavanna, RarityEpic, 850, 7},
	{"Kaplan", HabitatJungle, RarityRare, 650, 5},
	{"Maymun", HabitatJungle, RarityCommon, 200, 1},
	{"Goril", HabitatJungle, RarityEpic, 1100, 10},
	{"Papağan", HabitatJungle, RarityCommon, 150, 1},
	{"Tukan", HabitatJungle, RarityRare, 400, 3},
	{"Kutup Ayısı", HabitatPolar, RarityEpic, 1200, 12},
	{"Penguen", HabitatPolar, RarityCommon, 300, 2},
	{"Fok", HabitatPolar, RarityRare, 550, 5},
	{"Yunus", HabitatAquatic, RarityRare, 800, 6},
	{"Köpekbalığı", HabitatAquatic, RarityEpic, 1500, 15},
	{"Deniz Kaplumbağası", HabitatAquatic, RarityRare, 650, 5},
	{"Boz Ayı", HabitatForest, RarityRare, 600, 4},
	{"Geyik", HabitatForest, RarityCommon, 250, 1},
	{"Kızıl Panda", HabitatForest, RarityEpic, 800, 8},
	{"Panda", HabitatForest, RarityLegendary, 2000, 20},
}

func DefaultMarket() []MarketListing {
	out := make([]MarketListing, 0, len(speciesList))
	for i, s := range speciesList {
		out = append(out, MarketListing{
			ID:          "market-" + strconv.Itoa(i),
			Species:     s.name,
			Cost:        s.price,
			MinLevel:    s.minLvl,
			HabitatType: s.habitat,
			Rarity:      s.rarity,
			Image:       animalImage(s.name),
		})
	}
	return out
}

func DefaultRegions() []ExplorationRegion {
	return []ExplorationRegion{
		{
			ID: "reg-savanna", Name: "Serengeti Ovaları",
			Description: "Uçsuz bucaksız savanlarda vahşi yaşamı keşfet.",
			Cost:        500, MinLevel: 1, HabitatType: HabitatSavanna,
			Species: []string{"Aslan", "Zebra", "Zürafa", "Fil", "Gergedan", "Su Aygırı", "Çita"},
		},
		{
			ID: "reg-jungle", Name: "Amazon Ormanları",
			Description: "Sık ağaçların arasında egzotik türleri ara.",
			Cost:        800, MinLevel: 3, HabitatType: HabitatJungle,
			Species: []string{"Kaplan", "Maymun", "Goril", "Papağan", "Tukan"},
		},
		{
			ID: "reg-forest", Name: "Kara Orman",
			Description: "Sisli ormanlarda saklanan utangaç hayvanlar.",
			Cost:        600, MinLevel: 2, HabitatType: HabitatForest,
			Species: []string{"Boz Ayı", "Geyik", "Kızıl Panda", "Panda"},
		},
		{
			ID: "reg-polar", Name: "Antarktika Buzulları",
			Description: "Dondurucu soğukta yaşayan dayanıklı türler.",
			Cost:        1200, MinLevel: 5, HabitatType: HabitatPolar,
			Species: []string{"Kutup Ayısı", "Penguen", "Fok"},
		},
		{
			ID: "reg-aquatic", Name: "Büyük Resif",
			Description: "Okyanusun derinliklerine dalış yap.",
			Cost:        1500, MinLevel: 8, HabitatType: HabitatAquatic,
			Species: []string{"Yunus", "Köpekbalığı", "Deniz Kaplumbağası"},
		},
	}
}

func DefaultTasks() []Task {
	return []Task{
		{ID: "d1", Kind: TaskDaily, Title: "Sabah Temizliği", Description: "3 Barınağı temizle", Icon: "cleaning_services", MaxProgress: 3, Rewards: []Reward{{Kind: RewardGold, Amount: 150}}},
		{ID: "d2", Kind: TaskDaily, Title: "Ziyafet Vakti", Description: "10 Hayvanı besle", Icon: "restaurant", MaxProgress: 10, Rewards: []Reward{{Kind: RewardGold, Amount: 200}}},
		{ID: "d3", Kind: TaskDaily, Title: "Hasılatı Topla", Description: "500 Altın kazan", Icon: "payments", MaxProgress: 500, Rewards: []Reward{{Kind: RewardXP, Amount: 50}}},
		{ID: "evt-1", Kind: TaskEvent, Title: "Kutup Festivali", Description: "Kutup bölgesine 3 dekorasyon koy", Icon: "ac_unit", MaxProgress: 3, Rewards: []Reward{{Kind: RewardDiamond, Amount: 15}}},
	}
}

func DefaultSpecialEvents() []SpecialEvent {
	return []SpecialEvent{
		{
			ID: "ev-summer", Title: "Yaz Safarisi",
			Description:   "Sıcak havalarda savanlar daha hareketli!",
			RewardText:    "Eşsiz: Altın Aslan",
			RewardSpecies: "Aslan", RewardHabitat: HabitatSavanna, RewardRarity: RarityLegendary,
			RewardImage:      animalImage("Aslan"),
			RequiredProgress: 100, CurrentProgress: 45,
		},
	}
}

func MarketListingBySpecies(market []MarketListing, species string) *MarketListing {
	for i := range market {
		if market[i].Species == species {
			return &market[i]
		}
	}
	return nil
}

func animalImage(species string) string {
	return "https://placehold.co/400x400?text=" + species
}
