package card

// CounterKind is a closed enumeration of named counter kinds, drawn
// from the roughly two hundred distinct counter types used across
// modern card pools. Two kinds are special-cased everywhere in the
// engine: PlusOnePlusOne and MinusOneMinusOne annihilate each other
// one-for-one on a card; the rest are opaque bookkeeping the engine
// stores and reports but never interprets rules-wise — this is not a
// full rules engine. The table below seeds the common kinds seen in
// practice; cardcatalog's loader can introduce additional kinds by
// token at load time via Register, since the full ~200-entry card-game
// vocabulary has no rules significance beyond name and, for a handful,
// a fixed power/toughness delta.
type CounterKind string

const (
	PlusOnePlusOne   CounterKind = "+1/+1"
	MinusOneMinusOne CounterKind = "-1/-1"
	Loyalty          CounterKind = "loyalty"
	Charge           CounterKind = "charge"
	Poison           CounterKind = "poison"
	Energy           CounterKind = "energy"
	Experience       CounterKind = "experience"
	Age              CounterKind = "age"
	Arrowhead        CounterKind = "arrowhead"
	Blood            CounterKind = "blood"
	Bounty           CounterKind = "bounty"
	Brick            CounterKind = "brick"
	Carrion          CounterKind = "carrion"
	Corpse           CounterKind = "corpse"
	Credit           CounterKind = "credit"
	Croak            CounterKind = "croak"
	Depletion        CounterKind = "depletion"
	Despair          CounterKind = "despair"
	Devotion         CounterKind = "devotion"
	Divinity         CounterKind = "divinity"
	Doom             CounterKind = "doom"
	Echo             CounterKind = "echo"
	Elixir           CounterKind = "elixir"
	Eon              CounterKind = "eon"
	Eyeball          CounterKind = "eyeball"
	Fade             CounterKind = "fade"
	Feather          CounterKind = "feather"
	Fetch            CounterKind = "fetch"
	Filibuster       CounterKind = "filibuster"
	Flood            CounterKind = "flood"
	Fungus           CounterKind = "fungus"
	Fuse             CounterKind = "fuse"
	Gold             CounterKind = "gold"
	Growth           CounterKind = "growth"
	Hatchling        CounterKind = "hatchling"
	Hatching         CounterKind = "hatching"
	Healing          CounterKind = "healing"
	Hit              CounterKind = "hit"
	Hoofprint        CounterKind = "hoofprint"
	Hourglass        CounterKind = "hourglass"
	Hunger           CounterKind = "hunger"
	Ice              CounterKind = "ice"
	Incubation       CounterKind = "incubation"
	Infection        CounterKind = "infection"
	Intervention     CounterKind = "intervention"
	Isolation        CounterKind = "isolation"
	Javelin          CounterKind = "javelin"
	Ki               CounterKind = "ki"
	Kiva             CounterKind = "kiva"
	Knowledge        CounterKind = "knowledge"
	Level            CounterKind = "level"
	Lore             CounterKind = "lore"
	Luck             CounterKind = "luck"
	Magnet           CounterKind = "magnet"
	Manifestation    CounterKind = "manifestation"
	Mannequin        CounterKind = "mannequin"
	Mask             CounterKind = "mask"
	Matrix           CounterKind = "matrix"
	Mine             CounterKind = "mine"
	Mining           CounterKind = "mining"
	Mire             CounterKind = "mire"
	Music            CounterKind = "music"
	Muster           CounterKind = "muster"
	Necrodermis      CounterKind = "necrodermis"
	Net              CounterKind = "net"
	Omen             CounterKind = "omen"
	Ore              CounterKind = "ore"
	Page             CounterKind = "page"
	Pain             CounterKind = "pain"
	Paralyzation     CounterKind = "paralyzation"
	Pause            CounterKind = "pause"
	Petal            CounterKind = "petal"
	Petrification    CounterKind = "petrification"
	Phylactery       CounterKind = "phylactery"
	Pin              CounterKind = "pin"
	Pressure         CounterKind = "pressure"
	Prey             CounterKind = "prey"
	Pupa             CounterKind = "pupa"
	Quest            CounterKind = "quest"
	Rad              CounterKind = "rad"
	Rejection        CounterKind = "rejection"
	Removal          CounterKind = "removal"
	Rust             CounterKind = "rust"
	Scream           CounterKind = "scream"
	Shell            CounterKind = "shell"
	Shield           CounterKind = "shield"
	Shred            CounterKind = "shred"
	Sleep            CounterKind = "sleep"
	Sleight          CounterKind = "sleight"
	Slime            CounterKind = "slime"
	Slumber          CounterKind = "slumber"
	Soot             CounterKind = "soot"
	Spite            CounterKind = "spite"
	Spore            CounterKind = "spore"
	Stash            CounterKind = "stash"
	Storage          CounterKind = "storage"
	Strife           CounterKind = "strife"
	Study            CounterKind = "study"
	Stun             CounterKind = "stun"
	Suspect          CounterKind = "suspect"
	Task             CounterKind = "task"
	Theft            CounterKind = "theft"
	Tide             CounterKind = "tide"
	Time             CounterKind = "time"
	Trap             CounterKind = "trap"
	Treasure         CounterKind = "treasure"
	Unity            CounterKind = "unity"
	Valor            CounterKind = "valor"
	Velocity         CounterKind = "velocity"
	Verse            CounterKind = "verse"
	Vitality         CounterKind = "vitality"
	Volatile         CounterKind = "volatile"
	Vortex           CounterKind = "vortex"
	Vow              CounterKind = "vow"
	Wage             CounterKind = "wage"
	Winch            CounterKind = "winch"
	Wind             CounterKind = "wind"
	Wish             CounterKind = "wish"
)

// Info describes a counter kind's display token and, for the handful
// of kinds that modify power/toughness directly, its fixed delta.
type Info struct {
	Token          string
	DeltaPower     int
	DeltaToughness int
	IsPTModifier   bool
}

var registry = map[CounterKind]Info{
	PlusOnePlusOne:   {Token: "+1/+1", DeltaPower: 1, DeltaToughness: 1, IsPTModifier: true},
	MinusOneMinusOne: {Token: "-1/-1", DeltaPower: -1, DeltaToughness: -1, IsPTModifier: true},
}

func init() {
	for _, k := range []CounterKind{
		Loyalty, Charge, Poison, Energy, Experience, Age, Arrowhead, Blood, Bounty, Brick,
		Carrion, Corpse, Credit, Croak, Depletion, Despair, Devotion, Divinity, Doom, Echo,
		Elixir, Eon, Eyeball, Fade, Feather, Fetch, Filibuster, Flood, Fungus, Fuse, Gold,
		Growth, Hatchling, Hatching, Healing, Hit, Hoofprint, Hourglass, Hunger, Ice, Incubation,
		Infection, Intervention, Isolation, Javelin, Ki, Kiva, Knowledge, Level, Lore, Luck,
		Magnet, Manifestation, Mannequin, Mask, Matrix, Mine, Mining, Mire, Music, Muster,
		Necrodermis, Net, Omen, Ore, Page, Pain, Paralyzation, Pause, Petal, Petrification,
		Phylactery, Pin, Pressure, Prey, Pupa, Quest, Rad, Rejection, Removal, Rust, Scream,
		Shell, Shield, Shred, Sleep, Sleight, Slime, Slumber, Soot, Spite, Spore, Stash,
		Storage, Strife, Study, Stun, Suspect, Task, Theft, Tide, Time, Trap, Treasure,
		Unity, Valor, Velocity, Verse, Vitality, Volatile, Vortex, Vow, Wage, Winch, Wind, Wish,
	} {
		registry[k] = Info{Token: string(k)}
	}
}

// Register adds or overrides a counter kind's Info, used by the card
// catalog loader to admit kinds named in data files that aren't among
// the statically known ones above.
func Register(k CounterKind, info Info) { registry[k] = info }

// Lookup returns k's Info and whether k is known.
func Lookup(k CounterKind) (Info, bool) {
	info, ok := registry[k]
	return info, ok
}

// Token returns k's canonical display token, or its raw string form if
// unregistered.
func (k CounterKind) Token() string {
	if info, ok := registry[k]; ok {
		return info.Token
	}
	return string(k)
}

// PTDelta returns the power/toughness delta a single instance of k
// contributes, and whether k is a P/T-modifying kind at all.
func (k CounterKind) PTDelta() (dp, dt int, ok bool) {
	info, known := registry[k]
	if !known || !info.IsPTModifier {
		return 0, 0, false
	}
	return info.DeltaPower, info.DeltaToughness, true
}

// Counters is a multiset of counter kinds on a single card.
type Counters map[CounterKind]int

// Add increments kind's count by n (n may be negative via Remove
// instead; Add always adds a positive amount) and, for +1/+1 versus
// -1/-1, applies mutual annihilation: adding one kind removes one of
// the opposite kind first if present.
func (c Counters) Add(kind CounterKind, n int) {
	if n <= 0 {
		return
	}
	opposite := kind.opposite()
	if opposite != "" {
		for n > 0 && c[opposite] > 0 {
			c[opposite]--
			n--
		}
		if c[opposite] <= 0 {
			delete(c, opposite)
		}
	}
	if n > 0 {
		c[kind] += n
	}
}

// Remove decrements kind's count by up to n, never going below zero.
// Returns the number actually removed.
func (c Counters) Remove(kind CounterKind, n int) int {
	have := c[kind]
	if n > have {
		n = have
	}
	if n <= 0 {
		return 0
	}
	c[kind] -= n
	if c[kind] <= 0 {
		delete(c, kind)
	}
	return n
}

// Count returns the current amount of kind.
func (c Counters) Count(kind CounterKind) int { return c[kind] }

func (k CounterKind) opposite() CounterKind {
	switch k {
	case PlusOnePlusOne:
		return MinusOneMinusOne
	case MinusOneMinusOne:
		return PlusOnePlusOne
	default:
		return ""
	}
}

// PTBonus sums the power/toughness contribution of every P/T-modifying
// counter kind currently on the card.
func (c Counters) PTBonus() (dp, dt int) {
	for kind, n := range c {
		if d1, d2, ok := kind.PTDelta(); ok {
			dp += d1 * n
			dt += d2 * n
		}
	}
	return dp, dt
}
