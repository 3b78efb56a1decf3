package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lib/pq"
)

type presetUnit struct {
	Subject       string
	UnitKey       string
	UnitName      string
	Description   string
	Difficulty    int
	EstimatedTime int
	Prerequisites []string
}

// presetUnits is the starter catalog for the core high-school subjects.
var presetUnits = []presetUnit{
	// Mathematics
	{"Mathematics", "math-numbers-and-expressions", "Numbers and Expressions", "Polynomial arithmetic, factoring, real numbers", 1, 45, nil},
	{"Mathematics", "math-quadratic-functions", "Quadratic Functions", "Graphs of quadratics, maxima and minima", 2, 60, []string{"math-numbers-and-expressions"}},
	{"Mathematics", "math-trigonometry", "Trigonometric Ratios", "Sine, cosine, tangent and their applications", 2, 50, nil},
	{"Mathematics", "math-probability", "Counting and Probability", "Permutations, combinations, basic probability", 2, 55, nil},
	{"Mathematics", "math-sequences", "Sequences", "Arithmetic and geometric sequences, recurrences", 3, 65, nil},
	{"Mathematics", "math-vectors", "Vectors", "Plane and space vectors", 3, 60, nil},
	{"Mathematics", "math-differentiation", "Differentiation", "Derivatives, tangent lines, increasing and decreasing functions", 3, 70, nil},
	{"Mathematics", "math-integration", "Integration", "Indefinite and definite integrals, areas", 4, 70, []string{"math-differentiation"}},

	// English
	{"English", "eng-tenses", "Verb Tenses", "Present, past, future and the perfect forms", 1, 40, nil},
	{"English", "eng-passive", "Passive Voice", "Forming and using the passive", 2, 35, nil},
	{"English", "eng-infinitive", "Infinitives", "Noun, adjective and adverb uses", 2, 45, nil},
	{"English", "eng-participle", "Participles", "Present and past participles, participle clauses", 3, 50, nil},
	{"English", "eng-relative", "Relative Clauses", "Relative pronouns and adverbs", 3, 55, nil},
	{"English", "eng-conditionals", "Conditionals", "Second and third conditional, mixed forms", 3, 50, []string{"eng-tenses"}},

	// Chemistry
	{"Chemistry", "chem-atoms", "Atomic Structure", "Atomic number, electron configuration", 1, 40, nil},
	{"Chemistry", "chem-periodic", "The Periodic Table", "Periodicity, group properties", 2, 45, []string{"chem-atoms"}},
	{"Chemistry", "chem-bonding", "Chemical Bonding", "Ionic, covalent and metallic bonds", 2, 50, []string{"chem-atoms"}},
	{"Chemistry", "chem-mole", "The Mole", "Mole calculations, chemical equations", 2, 55, nil},
	{"Chemistry", "chem-acid-base", "Acids and Bases", "pH and neutralization", 3, 50, []string{"chem-mole"}},
	{"Chemistry", "chem-redox", "Redox Reactions", "Oxidation numbers, cells, electrolysis", 3, 60, []string{"chem-acid-base"}},

	// Physics
	{"Physics", "phys-motion", "Uniform Acceleration", "Velocity, acceleration, equations of motion", 2, 50, nil},
	{"Physics", "phys-force", "Forces and Motion", "Newton's laws, equilibrium", 2, 55, []string{"phys-motion"}},
	{"Physics", "phys-energy", "Work and Energy", "Kinetic and potential energy", 2, 50, []string{"phys-force"}},
	{"Physics", "phys-wave", "Waves", "Wave properties, interference, diffraction", 3, 55, nil},
	{"Physics", "phys-electricity", "Electricity", "Ohm's law, circuits", 2, 50, nil},

	// Biology
	{"Biology", "bio-cell", "Cell Structure", "Organelles, prokaryotes and eukaryotes", 1, 40, nil},
	{"Biology", "bio-dna", "DNA and Genes", "DNA structure, replication, transcription, translation", 2, 55, []string{"bio-cell"}},
	{"Biology", "bio-metabolism", "Metabolism", "Respiration, photosynthesis, enzymes", 3, 60, []string{"bio-cell"}},
	{"Biology", "bio-genetics", "Inheritance", "Mendel's laws, allele combinations", 2, 50, nil},

	// History
	{"History", "hist-industrial", "The Industrial Revolution", "Origins, spread and social impact", 2, 45, nil},
	{"History", "hist-ww1", "World War I", "Causes and consequences of the war", 2, 50, nil},
	{"History", "hist-ww2", "World War II", "Course of the war and the postwar settlement", 2, 55, []string{"hist-ww1"}},
	{"History", "hist-cold-war", "The Cold War", "East-West confrontation and its structure", 2, 50, []string{"hist-ww2"}},
}

// SeedUnits inserts the preset catalog. Existing unit keys are left
// untouched so curator edits survive restarts.
func SeedUnits(db *sql.DB) error {
	inserted := 0
	for _, u := range presetUnits {
		res, err := db.Exec(
			`INSERT INTO units (subject, unit_key, unit_name, description, difficulty_level, estimated_time, prerequisite_units)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (unit_key) DO NOTHING`,
			u.Subject, u.UnitKey, u.UnitName, u.Description, u.Difficulty, u.EstimatedTime, pq.Array(u.Prerequisites),
		)
		if err != nil {
			return fmt.Errorf("seed unit %s: %w", u.UnitKey, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}
	if inserted > 0 {
		log.Printf("Seeded %d preset units", inserted)
	}
	return nil
}
