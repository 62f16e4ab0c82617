package domain

import "strings"

// Region - административный регион Намибии
type Region struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Capital     string   `json:"capital"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
}

// Region IDs
const (
	RegionErongo       = "erongo"
	RegionHardap       = "hardap"
	RegionKaras        = "karas"
	RegionKavangoEast  = "kavango-east"
	RegionKavangoWest  = "kavango-west"
	RegionKhomas       = "khomas"
	RegionKunene       = "kunene"
	RegionOhangwena    = "ohangwena"
	RegionOmaheke      = "omaheke"
	RegionOmusati      = "omusati"
	RegionOshana       = "oshana"
	RegionOshikoto     = "oshikoto"
	RegionOtjozondjupa = "otjozondjupa"
	RegionZambezi      = "zambezi"
)

// LocationAlias связывает название места с регионом.
// Порядок записей в таблице значим: он разрешает неоднозначные совпадения по подстроке.
type LocationAlias struct {
	Location string `json:"location"`
	RegionID string `json:"region_id"`
}

var namibianRegions = []Region{
	{
		ID:          RegionErongo,
		Name:        "Erongo",
		Capital:     "Swakopmund",
		Description: "Atlantic coast, Namib dunes and the granite peaks of Spitzkoppe.",
		Highlights:  []string{"Swakopmund", "Walvis Bay lagoon", "Spitzkoppe", "Brandberg"},
	},
	{
		ID:          RegionHardap,
		Name:        "Hardap",
		Capital:     "Mariental",
		Description: "Home of Sossusvlei and the red dunes of the Namib-Naukluft Park.",
		Highlights:  []string{"Sossusvlei", "Deadvlei", "Sesriem Canyon", "Hardap Dam"},
	},
	{
		ID:          RegionKaras,
		Name:        "//Karas",
		Capital:     "Keetmanshoop",
		Description: "The deep south: Fish River Canyon, ghost towns and the Orange River.",
		Highlights:  []string{"Fish River Canyon", "Kolmanskop", "Lüderitz", "Quiver Tree Forest"},
	},
	{
		ID:          RegionKavangoEast,
		Name:        "Kavango East",
		Capital:     "Rundu",
		Description: "River life along the Okavango and the Popa Falls rapids.",
		Highlights:  []string{"Okavango River", "Popa Falls", "Bwabwata National Park"},
	},
	{
		ID:          RegionKavangoWest,
		Name:        "Kavango West",
		Capital:     "Nkurenkuru",
		Description: "Rural riverside villages and woodcarving traditions.",
		Highlights:  []string{"Nkurenkuru", "Mangetti National Park"},
	},
	{
		ID:          RegionKhomas,
		Name:        "Khomas",
		Capital:     "Windhoek",
		Description: "The capital region with its highland scenery and city life.",
		Highlights:  []string{"Windhoek", "Christuskirche", "Daan Viljoen Game Reserve"},
	},
	{
		ID:          RegionKunene,
		Name:        "Kunene",
		Capital:     "Opuwo",
		Description: "Rugged Damaraland, desert-adapted elephants and Himba culture.",
		Highlights:  []string{"Twyfelfontein", "Epupa Falls", "Skeleton Coast", "Himba villages"},
	},
	{
		ID:          RegionOhangwena,
		Name:        "Ohangwena",
		Capital:     "Eenhana",
		Description: "Densely populated north with Oshiwambo heritage sites.",
		Highlights:  []string{"Eenhana Shrine", "Helao Nafidi"},
	},
	{
		ID:          RegionOmaheke,
		Name:        "Omaheke",
		Capital:     "Gobabis",
		Description: "Cattle country bordering the Kalahari and Botswana.",
		Highlights:  []string{"Gobabis", "Kalahari sands", "San communities"},
	},
	{
		ID:          RegionOmusati,
		Name:        "Omusati",
		Capital:     "Outapi",
		Description: "Baobabs, salt pans and the Ombalantu baobab tree.",
		Highlights:  []string{"Ombalantu Baobab", "Ruacana Falls"},
	},
	{
		ID:          RegionOshana,
		Name:        "Oshana",
		Capital:     "Oshakati",
		Description: "Seasonal floodplains and the busy markets of Oshakati and Ondangwa.",
		Highlights:  []string{"Oshakati open market", "Ondangwa", "Nakambale Museum"},
	},
	{
		ID:          RegionOshikoto,
		Name:        "Oshikoto",
		Capital:     "Omuthiya",
		Description: "Eastern Etosha, Lake Otjikoto and the mining town of Tsumeb.",
		Highlights:  []string{"Etosha National Park", "Lake Otjikoto", "Tsumeb Museum"},
	},
	{
		ID:          RegionOtjozondjupa,
		Name:        "Otjozondjupa",
		Capital:     "Otjiwarongo",
		Description: "Waterberg Plateau, cheetah conservation and the Hoba meteorite.",
		Highlights:  []string{"Waterberg Plateau", "Cheetah Conservation Fund", "Hoba Meteorite", "Okahandja craft market"},
	},
	{
		ID:          RegionZambezi,
		Name:        "Zambezi",
		Capital:     "Katima Mulilo",
		Description: "Lush wetlands between four rivers at the heart of KAZA.",
		Highlights:  []string{"Chobe River", "Mudumu National Park", "Nkasa Rupara National Park"},
	},
}

var namibianLocations = []LocationAlias{
	{Location: "windhoek", RegionID: RegionKhomas},
	{Location: "khomas", RegionID: RegionKhomas},
	{Location: "swakopmund", RegionID: RegionErongo},
	{Location: "walvis bay", RegionID: RegionErongo},
	{Location: "henties bay", RegionID: RegionErongo},
	{Location: "spitzkoppe", RegionID: RegionErongo},
	{Location: "erongo", RegionID: RegionErongo},
	{Location: "sossusvlei", RegionID: RegionHardap},
	{Location: "sesriem", RegionID: RegionHardap},
	{Location: "mariental", RegionID: RegionHardap},
	{Location: "hardap", RegionID: RegionHardap},
	{Location: "keetmanshoop", RegionID: RegionKaras},
	{Location: "luderitz", RegionID: RegionKaras},
	{Location: "lüderitz", RegionID: RegionKaras},
	{Location: "fish river canyon", RegionID: RegionKaras},
	{Location: "karas", RegionID: RegionKaras},
	{Location: "rundu", RegionID: RegionKavangoEast},
	{Location: "kavango east", RegionID: RegionKavangoEast},
	{Location: "nkurenkuru", RegionID: RegionKavangoWest},
	{Location: "kavango west", RegionID: RegionKavangoWest},
	{Location: "opuwo", RegionID: RegionKunene},
	{Location: "twyfelfontein", RegionID: RegionKunene},
	{Location: "damaraland", RegionID: RegionKunene},
	{Location: "skeleton coast", RegionID: RegionKunene},
	{Location: "kunene", RegionID: RegionKunene},
	{Location: "eenhana", RegionID: RegionOhangwena},
	{Location: "ohangwena", RegionID: RegionOhangwena},
	{Location: "gobabis", RegionID: RegionOmaheke},
	{Location: "omaheke", RegionID: RegionOmaheke},
	{Location: "outapi", RegionID: RegionOmusati},
	{Location: "ruacana", RegionID: RegionOmusati},
	{Location: "omusati", RegionID: RegionOmusati},
	{Location: "oshakati", RegionID: RegionOshana},
	{Location: "ondangwa", RegionID: RegionOshana},
	{Location: "oshana", RegionID: RegionOshana},
	{Location: "etosha", RegionID: RegionOshikoto},
	{Location: "tsumeb", RegionID: RegionOshikoto},
	{Location: "omuthiya", RegionID: RegionOshikoto},
	{Location: "oshikoto", RegionID: RegionOshikoto},
	{Location: "otjiwarongo", RegionID: RegionOtjozondjupa},
	{Location: "okahandja", RegionID: RegionOtjozondjupa},
	{Location: "waterberg", RegionID: RegionOtjozondjupa},
	{Location: "grootfontein", RegionID: RegionOtjozondjupa},
	{Location: "otjozondjupa", RegionID: RegionOtjozondjupa},
	{Location: "katima mulilo", RegionID: RegionZambezi},
	{Location: "caprivi", RegionID: RegionZambezi},
	{Location: "zambezi", RegionID: RegionZambezi},
}

// RegionRegistry - неизменяемый справочник регионов и таблица сопоставления мест с регионами
type RegionRegistry struct {
	regions   []Region
	byID      map[string]int
	locations []LocationAlias
	exact     map[string]string
}

// NewRegionRegistry строит справочник из заданных таблиц.
// При повторе ключа в exact-индексе побеждает первая запись.
func NewRegionRegistry(regions []Region, locations []LocationAlias) *RegionRegistry {
	r := &RegionRegistry{
		regions:   regions,
		byID:      make(map[string]int, len(regions)),
		locations: locations,
		exact:     make(map[string]string, len(locations)),
	}
	for i, region := range regions {
		r.byID[region.ID] = i
	}
	for _, loc := range locations {
		key := normalizeLocation(loc.Location)
		if _, exists := r.exact[key]; !exists {
			r.exact[key] = loc.RegionID
		}
	}
	return r
}

// DefaultRegionRegistry возвращает справочник 14 регионов Намибии
func DefaultRegionRegistry() *RegionRegistry {
	return NewRegionRegistry(namibianRegions, namibianLocations)
}

// Regions возвращает все регионы в порядке таблицы
func (r *RegionRegistry) Regions() []Region {
	out := make([]Region, len(r.regions))
	copy(out, r.regions)
	return out
}

// Locations возвращает таблицу сопоставления мест в порядке вставки
func (r *RegionRegistry) Locations() []LocationAlias {
	out := make([]LocationAlias, len(r.locations))
	copy(out, r.locations)
	return out
}

// RegionByID ищет регион по идентификатору
func (r *RegionRegistry) RegionByID(id string) (Region, bool) {
	idx, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Region{}, false
	}
	return r.regions[idx], true
}

// RegionFromLocation определяет регион по произвольной строке местоположения.
// Сначала точное совпадение, затем первое совпадение по подстроке в любую сторону
// в порядке таблицы. ok=false означает "регион неизвестен", а не ошибку.
func (r *RegionRegistry) RegionFromLocation(location string) (string, bool) {
	needle := normalizeLocation(location)
	if needle == "" {
		return "", false
	}

	if regionID, ok := r.exact[needle]; ok {
		return regionID, true
	}

	for _, loc := range r.locations {
		key := normalizeLocation(loc.Location)
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return loc.RegionID, true
		}
	}

	return "", false
}

func normalizeLocation(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
