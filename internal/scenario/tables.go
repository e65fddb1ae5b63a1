package scenario

import "fmt"

// Weather selects the road-surface base friction.
type Weather int

const (
	DryAsphalt Weather = iota
	WetAsphalt
	Snow
	Ice
)

var weatherTable = []struct {
	name string
	mu   float64
}{
	{"dry asphalt", 0.85},
	{"wet asphalt", 0.55},
	{"snow", 0.20},
	{"ice", 0.10},
}

func (w Weather) String() string {
	if int(w) < 0 || int(w) >= len(weatherTable) {
		return "unknown"
	}
	return weatherTable[w].name
}

// BaseMu is the surface friction coefficient under ideal tyres.
func (w Weather) BaseMu() float64 {
	if int(w) < 0 || int(w) >= len(weatherTable) {
		return weatherTable[DryAsphalt].mu
	}
	return weatherTable[w].mu
}

func Weathers() []Weather {
	return []Weather{DryAsphalt, WetAsphalt, Snow, Ice}
}

func ParseWeather(s string) (Weather, error) {
	switch s {
	case "dry", "dry_asphalt":
		return DryAsphalt, nil
	case "wet", "wet_asphalt":
		return WetAsphalt, nil
	case "snow":
		return Snow, nil
	case "ice":
		return Ice, nil
	}
	return DryAsphalt, fmt.Errorf("unknown weather: %q", s)
}

// TyreCondition scales the surface friction by tread quality.
type TyreCondition int

const (
	TyresGood TyreCondition = iota
	TyresDecent
	TyresWorn
)

var tyreTable = []struct {
	name   string
	factor float64
}{
	{"good (new / healthy tread)", 1.0},
	{"decent (average)", 0.8},
	{"worn (low tread)", 0.5},
}

func (t TyreCondition) String() string {
	if int(t) < 0 || int(t) >= len(tyreTable) {
		return "unknown"
	}
	return tyreTable[t].name
}

func (t TyreCondition) Factor() float64 {
	if int(t) < 0 || int(t) >= len(tyreTable) {
		return tyreTable[TyresDecent].factor
	}
	return tyreTable[t].factor
}

func TyreConditions() []TyreCondition {
	return []TyreCondition{TyresGood, TyresDecent, TyresWorn}
}

func ParseTyres(s string) (TyreCondition, error) {
	switch s {
	case "good":
		return TyresGood, nil
	case "decent":
		return TyresDecent, nil
	case "worn", "poor":
		return TyresWorn, nil
	}
	return TyresDecent, fmt.Errorf("unknown tyre condition: %q", s)
}

// GradePreset is a named road slope. Negative percent means downhill.
type GradePreset int

const (
	Flat GradePreset = iota
	SlightUphill
	ModerateUphill
	SlightDownhill
	ModerateDownhill
	SteepDownhill
)

var gradeTable = []struct {
	name    string
	percent float64
}{
	{"flat or near-flat", 0.0},
	{"slight uphill", 2.0},
	{"moderate uphill", 5.0},
	{"slight downhill", -2.0},
	{"moderate downhill", -5.0},
	{"steep downhill", -8.0},
}

func (g GradePreset) String() string {
	if int(g) < 0 || int(g) >= len(gradeTable) {
		return "unknown"
	}
	return gradeTable[g].name
}

func (g GradePreset) Percent() float64 {
	if int(g) < 0 || int(g) >= len(gradeTable) {
		return 0
	}
	return gradeTable[g].percent
}

func GradePresets() []GradePreset {
	return []GradePreset{Flat, SlightUphill, ModerateUphill, SlightDownhill, ModerateDownhill, SteepDownhill}
}

// Car is an entry of the vehicle database: approximate mass, drag
// coefficient, and frontal area. Values vary by year/model/trim.
type Car struct {
	Name            string
	MassKg          float64
	DragCoefficient float64
	FrontalAreaM2   float64
}

var Cars = []Car{
	{"Toyota HiLux", 2100, 0.40, 2.5},
	{"Toyota Corolla", 1300, 0.29, 2.2},
	{"Toyota RAV4", 1600, 0.33, 2.7},
	{"Mazda CX-5", 1600, 0.33, 2.7},
	{"Hyundai i30", 1300, 0.30, 2.2},
	{"Toyota Camry", 1500, 0.28, 2.2},
	{"Mazda3", 1300, 0.28, 2.2},
	{"Mitsubishi Triton", 2000, 0.42, 2.7},
	{"Nissan X-Trail", 1500, 0.35, 2.7},
	{"Subaru Forester", 1500, 0.35, 2.7},
}

// DefaultCar is substituted when a selection is invalid.
func DefaultCar() Car {
	return Cars[1] // Toyota Corolla
}

func CarByName(name string) (Car, bool) {
	for _, c := range Cars {
		if c.Name == name {
			return c, true
		}
	}
	return Car{}, false
}
