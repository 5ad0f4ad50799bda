package autocomplete

// DefaultVocabulary is the built-in list of technique names offered while
// typing. Order matters: it is the order suggestions are listed in.
var DefaultVocabulary = []string{
	// Striking
	"Jab",
	"Cross",
	"Hook",
	"Uppercut",
	"Jab-cross",
	"Low kick",
	"Middle kick",
	"High kick",
	"Front kick (teep)",
	"Roundhouse kick",
	"Switch kick",
	"Spinning back kick",
	"Superman punch",
	"Overhand",
	"Lead hook",
	"Rear hook",
	"Body hook",
	"Slip",
	"Duck",
	"Parry",
	"Block",
	"Check kick",
	"Esquive",
	"Contre",

	// Lutte
	"Single leg takedown",
	"Double leg takedown",
	"Sprawl",
	"Underhook",
	"Overhook",
	"Body lock",
	"Hip toss",
	"Clinch",
	"Collar tie",
	"Pummeling",
	"Shoot",
	"Blast double",
	"High crotch",
	"Ankle pick",
	"Foot sweep",

	// Sol / grappling
	"Guard",
	"Closed guard",
	"Open guard",
	"Half guard",
	"Side control",
	"Mount",
	"Back control",
	"Armbar",
	"Triangle choke",
	"Rear naked choke",
	"Guillotine",
	"Kimura",
	"Americana",
	"D'Arce choke",
	"Anaconda choke",
	"North-south choke",
	"Ezekiel choke",
	"Arm triangle",
	"Sweep",
	"Escape",
	"Bridge",
	"Shrimp",
	"Hip escape",
	"Elevator sweep",
	"Scissor sweep",
	"Flower sweep",
	"X-guard",
	"De la Riva guard",
	"Spider guard",
	"Butterfly guard",
	"Leg drag",
	"Berimbolo",
	"Knee slice",
	"Toreando pass",
	"Stack pass",
	"Pressure pass",

	// MMA
	"Ground and pound",
	"Elbows au sol",
	"Transition debout-sol",
	"Cage work",
	"Wall walking",
	"Get up",
	"Scramble",
	"Defensive guard",
}
