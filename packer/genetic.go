package packer

import (
	"math/rand"

	"github.com/nestlab/irregularpack/geom"
	"github.com/nestlab/irregularpack/oracle"
)

const (
	maxPopulation  = 50
	generationCap  = 100
	mutationRate   = 0.1
	tournamentSize = 3

	defaultRNGSeed int64 = 1
)

// rngFromSeed returns a deterministic *rand.Rand. seed==0 selects
// defaultRNGSeed so a zero-value Options.Seed still yields reproducible
// runs rather than an unseeded generator.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// individual is one candidate solution: a permutation of unit indices and,
// independently, the chosen orientation index for every unit (addressed by
// unit index, not by position in order).
type individual struct {
	order  []int
	orient []int
}

func (ind individual) clone() individual {
	order := make([]int, len(ind.order))
	copy(order, ind.order)
	orient := make([]int, len(ind.orient))
	copy(orient, ind.orient)
	return individual{order: order, orient: orient}
}

// evaluate places units in ind's order using ind's chosen orientations and
// returns the placement, the units left unplaced, and the resulting
// material efficiency (percent of bin area covered by placed pieces).
func evaluate(units []unit, ind individual, container oracle.Container, strategy oracle.Strategy, margin float64) ([]Placement, []unit, float64) {
	placed := make([]Placement, 0, len(units))
	var unplaced []unit
	absolute := make([]geom.Polygon, 0, len(units))
	usedArea := 0.0

	for _, idx := range ind.order {
		u := units[idx]
		p, ok := placeOneOrientation(u, ind.orient[idx], container, absolute, strategy, margin)
		if !ok {
			unplaced = append(unplaced, u)
			continue
		}
		absolute = append(absolute, toGeomPolygon(p.Polygon))
		placed = append(placed, p)
		usedArea += p.Area
	}

	binArea := container.Width * container.Height
	efficiency := 0.0
	if binArea > 0 {
		efficiency = usedArea / binArea * 100
	}
	return placed, unplaced, efficiency
}

func randomIndividual(n int, orientationCounts []int, rng *rand.Rand) individual {
	order := rng.Perm(n)
	orient := make([]int, n)
	for i := range orient {
		if orientationCounts[i] > 1 {
			orient[i] = rng.Intn(orientationCounts[i])
		}
	}
	return individual{order: order, orient: orient}
}

func tournamentSelect(pop []individual, fitness []float64, rng *rand.Rand) individual {
	best := -1
	for i := 0; i < tournamentSize; i++ {
		c := rng.Intn(len(pop))
		if best == -1 || fitness[c] > fitness[best] {
			best = c
		}
	}
	return pop[best]
}

// crossover combines two parents' permutations with a one-point cut on the
// order, filling the remainder from the other parent and dropping repeats
// by first occurrence; orientation choices follow whichever parent
// contributed each unit's position.
func crossover(p1, p2 individual, rng *rand.Rand) individual {
	n := len(p1.order)
	point := 0
	if n > 1 {
		point = rng.Intn(n)
	}

	child := make([]int, 0, n)
	seen := make(map[int]bool, n)
	for i := 0; i < point; i++ {
		child = append(child, p1.order[i])
		seen[p1.order[i]] = true
	}
	for _, v := range p2.order {
		if !seen[v] {
			child = append(child, v)
			seen[v] = true
		}
	}

	orient := make([]int, n)
	copy(orient, p2.orient)
	for i := 0; i < point; i++ {
		orient[p1.order[i]] = p1.orient[p1.order[i]]
	}

	return individual{order: child, orient: orient}
}

// mutate applies, with equal probability, a position swap, an orientation
// rerandomization, or both.
func mutate(ind individual, orientationCounts []int, rng *rand.Rand) {
	n := len(ind.order)
	if n < 2 {
		return
	}
	roll := rng.Float64()
	doSwap := roll < 2.0/3.0
	doOrient := roll >= 1.0/3.0

	if doSwap {
		i := rng.Intn(n)
		j := rng.Intn(n)
		ind.order[i], ind.order[j] = ind.order[j], ind.order[i]
	}
	if doOrient {
		u := rng.Intn(n)
		if orientationCounts[u] > 1 {
			ind.orient[u] = rng.Intn(orientationCounts[u])
		}
	}
}

// runGenetic searches over piece orderings and orientations with a genetic
// algorithm and returns the best placement found across all generations.
func runGenetic(units []unit, container oracle.Container, strategy oracle.Strategy, seed int64, margin float64) ([]Placement, []unit) {
	n := len(units)
	if n == 0 {
		return nil, nil
	}

	rng := rngFromSeed(seed)
	orientationCounts := make([]int, n)
	for i, u := range units {
		orientationCounts[i] = len(u.orientations)
	}

	popSize := maxPopulation
	if 2*n < popSize {
		popSize = 2 * n
	}
	if popSize < 1 {
		popSize = 1
	}

	pop := make([]individual, popSize)
	for i := range pop {
		pop[i] = randomIndividual(n, orientationCounts, rng)
	}

	var (
		bestPlaced    []Placement
		bestUnplaced  []unit
		bestFitness   = -1.0
		bestIndivSeen bool
	)

	for gen := 0; gen < generationCap; gen++ {
		fitness := make([]float64, popSize)
		for i, ind := range pop {
			placed, unplaced, eff := evaluate(units, ind, container, strategy, margin)
			fitness[i] = eff
			if !bestIndivSeen || eff > bestFitness {
				bestFitness = eff
				bestPlaced = placed
				bestUnplaced = unplaced
				bestIndivSeen = true
			}
		}

		eliteIdx := 0
		for i, f := range fitness {
			if f > fitness[eliteIdx] {
				eliteIdx = i
			}
		}
		elite := pop[eliteIdx].clone()

		next := make([]individual, 0, popSize)
		next = append(next, elite)
		for len(next) < popSize {
			p1 := tournamentSelect(pop, fitness, rng)
			p2 := tournamentSelect(pop, fitness, rng)
			child := crossover(p1, p2, rng)
			if rng.Float64() < mutationRate {
				mutate(child, orientationCounts, rng)
			}
			next = append(next, child)
		}
		pop = next
	}

	return bestPlaced, bestUnplaced
}
