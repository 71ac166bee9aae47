// Package skill models skill proficiency: a closed list of skills, the
// specialization-to-general hierarchy, and the table a character trains in.
package skill

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies a skill.
type Kind int

const (
	// Combat
	Melee Kind = iota
	MeleeUnarmed
	MeleeBlades
	MeleeBludgeoning
	Ranged
	RangedOneHanded
	RangedTwoHanded
	Explosives
	HeavyWeapons
	HeavyWeaponsArtillery
	HeavyWeaponsPortable
	HeavyWeaponsVehicle

	// Social
	Broker
	Persuade
	Streetwise
	Deception
	Leadership
	Diplomat

	// Knowledge
	Electronics
	Investigate
	Mechanic
	Medic
	Admin
	Advocate
	Science
	LanguageBasic
	LanguageBinaricCant
	LanguageOuterAsh

	// Misc
	Athletics
	AthleticsDexterity
	AthleticsEndurance
	AthleticsStrength
	Stealth
	Survival
	Recon
	AnimalHandling
	Carouse
	Drive
	DriveWheels
	DriveWalker
	DriveTracked
	Gambler
	Navigation
	VaccSuit

	kindCount
)

var kindNames = [kindCount]string{
	Melee:                 "melee",
	MeleeUnarmed:          "melee_unarmed",
	MeleeBlades:           "melee_blades",
	MeleeBludgeoning:      "melee_bludgeoning",
	Ranged:                "ranged",
	RangedOneHanded:       "ranged_one_handed",
	RangedTwoHanded:       "ranged_two_handed",
	Explosives:            "explosives",
	HeavyWeapons:          "heavy_weapons",
	HeavyWeaponsArtillery: "heavy_weapons_artillery",
	HeavyWeaponsPortable:  "heavy_weapons_portable",
	HeavyWeaponsVehicle:   "heavy_weapons_vehicle",
	Broker:                "broker",
	Persuade:              "persuade",
	Streetwise:            "streetwise",
	Deception:             "deception",
	Leadership:            "leadership",
	Diplomat:              "diplomat",
	Electronics:           "electronics",
	Investigate:           "investigate",
	Mechanic:              "mechanic",
	Medic:                 "medic",
	Admin:                 "admin",
	Advocate:              "advocate",
	Science:               "science",
	LanguageBasic:         "language_basic",
	LanguageBinaricCant:   "language_binaric_cant",
	LanguageOuterAsh:      "language_outer_ash",
	Athletics:             "athletics",
	AthleticsDexterity:    "athletics_dexterity",
	AthleticsEndurance:    "athletics_endurance",
	AthleticsStrength:     "athletics_strength",
	Stealth:               "stealth",
	Survival:              "survival",
	Recon:                 "recon",
	AnimalHandling:        "animal_handling",
	Carouse:               "carouse",
	Drive:                 "drive",
	DriveWheels:           "drive_wheels",
	DriveWalker:           "drive_walker",
	DriveTracked:          "drive_tracked",
	Gambler:               "gambler",
	Navigation:            "navigation",
	VaccSuit:              "vacc_suit",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

// generalOf maps each specialization to its general skill.
var generalOf = map[Kind]Kind{
	MeleeUnarmed:          Melee,
	MeleeBlades:           Melee,
	MeleeBludgeoning:      Melee,
	RangedOneHanded:       Ranged,
	RangedTwoHanded:       Ranged,
	HeavyWeaponsArtillery: HeavyWeapons,
	HeavyWeaponsPortable:  HeavyWeapons,
	HeavyWeaponsVehicle:   HeavyWeapons,
	AthleticsDexterity:    Athletics,
	AthleticsEndurance:    Athletics,
	AthleticsStrength:     Athletics,
	DriveWheels:           Drive,
	DriveWalker:           Drive,
	DriveTracked:          Drive,
}

// Kinds returns every skill in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// General returns the general skill kind specializes, if any.
//
// Postcondition: ok is false for general skills and for skills without specialties.
func General(kind Kind) (general Kind, ok bool) {
	general, ok = generalOf[kind]
	return general, ok
}

// String returns the snake_case skill name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("skill(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the Kind with the given snake_case name.
//
// Postcondition: Returns the matching Kind or a non-nil error.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindsByName[s]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("skill: unknown skill %q", s)
}

// UnmarshalYAML decodes a skill from its snake_case name.
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return fmt.Errorf("skill: line %d: %w", value.Line, err)
	}
	parsed, err := ParseKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}
