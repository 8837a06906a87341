// Package onemax implements the One-Max genetic algorithm used as the
// benchmark workload: evolve a fixed-length binary string to all ones.
package onemax

import "math/rand"

// Config holds the genetic algorithm parameters
type Config struct {
	PopulationSize   int
	ChromosomeLength int
	MaxGenerations   int
	CrossoverRate    float64
	MutationRate     float64
	TournamentSize   int
}

// DefaultConfig returns the fixed parameters shared by every language
// implementation in the comparison.
func DefaultConfig() Config {
	return Config{
		PopulationSize:   100,
		ChromosomeLength: 100,
		MaxGenerations:   500,
		CrossoverRate:    0.8,
		MutationRate:     0.01,
		TournamentSize:   3,
	}
}

// Individual is one candidate bit string
type Individual []byte

// Fitness counts the set bits; the optimum equals the chromosome length
func (ind Individual) Fitness() int {
	sum := 0
	for _, bit := range ind {
		sum += int(bit)
	}
	return sum
}

func (ind Individual) clone() Individual {
	out := make(Individual, len(ind))
	copy(out, ind)
	return out
}

// GA runs the evolutionary loop for one configuration
type GA struct {
	cfg Config
	rng *rand.Rand
}

// New creates a GA with the given parameters and random source
func New(cfg Config, rng *rand.Rand) *GA {
	return &GA{cfg: cfg, rng: rng}
}

// Run evolves a fresh population until an all-ones individual appears or the
// generation cap is reached. It returns the generation count at convergence
// (or the cap) and the best fitness achieved.
func (g *GA) Run() (generations, bestFitness int) {
	population := g.newPopulation()

	for generation := 0; generation < g.cfg.MaxGenerations; generation++ {
		fitnesses, best := evaluate(population)
		if best >= g.cfg.ChromosomeLength {
			return generation, best
		}
		population = g.nextGeneration(population, fitnesses)
	}

	_, best := evaluate(population)
	return g.cfg.MaxGenerations, best
}

func (g *GA) newPopulation() []Individual {
	population := make([]Individual, g.cfg.PopulationSize)
	for i := range population {
		individual := make(Individual, g.cfg.ChromosomeLength)
		for j := range individual {
			individual[j] = byte(g.rng.Intn(2))
		}
		population[i] = individual
	}
	return population
}

func evaluate(population []Individual) (fitnesses []int, best int) {
	fitnesses = make([]int, len(population))
	for i, individual := range population {
		fitnesses[i] = individual.Fitness()
		if fitnesses[i] > best {
			best = fitnesses[i]
		}
	}
	return fitnesses, best
}

func (g *GA) nextGeneration(population []Individual, fitnesses []int) []Individual {
	next := make([]Individual, 0, g.cfg.PopulationSize)

	for len(next) < g.cfg.PopulationSize {
		parent1 := g.selectParent(population, fitnesses)
		parent2 := g.selectParent(population, fitnesses)

		child1, child2 := g.crossover(parent1, parent2)
		g.mutate(child1)
		g.mutate(child2)

		next = append(next, child1, child2)
	}

	return next[:g.cfg.PopulationSize]
}

// selectParent picks the fittest of a random tournament
func (g *GA) selectParent(population []Individual, fitnesses []int) Individual {
	bestIndex := g.rng.Intn(len(population))
	for i := 1; i < g.cfg.TournamentSize; i++ {
		idx := g.rng.Intn(len(population))
		if fitnesses[idx] > fitnesses[bestIndex] {
			bestIndex = idx
		}
	}
	return population[bestIndex]
}

// crossover performs single-point crossover, or copies the parents through
// when the crossover rate gate fails
func (g *GA) crossover(parent1, parent2 Individual) (Individual, Individual) {
	if g.rng.Float64() > g.cfg.CrossoverRate {
		return parent1.clone(), parent2.clone()
	}

	point := g.rng.Intn(g.cfg.ChromosomeLength-1) + 1

	child1 := make(Individual, g.cfg.ChromosomeLength)
	child2 := make(Individual, g.cfg.ChromosomeLength)

	copy(child1[:point], parent1[:point])
	copy(child1[point:], parent2[point:])
	copy(child2[:point], parent2[:point])
	copy(child2[point:], parent1[point:])

	return child1, child2
}

// mutate flips each bit independently with the configured rate
func (g *GA) mutate(individual Individual) {
	for i := range individual {
		if g.rng.Float64() < g.cfg.MutationRate {
			individual[i] = 1 - individual[i]
		}
	}
}
