package scoring

// WeightSet defines the relative importance of each dimension, in percent.
// All weights must sum to 100.
type WeightSet struct {
	Skills     int
	Experience int
	Culture    int
	Domain     int
	Logistics  int
}

// FullWeights returns the weight distribution used when the company supplied
// an explicit culture_fit score.
func FullWeights() WeightSet {
	return WeightSet{Skills: 45, Experience: 20, Culture: 20, Domain: 10, Logistics: 5}
}

// ReducedCultureWeights returns the distribution used when the culture
// scorer fell back to its conservative estimate: culture drops to 10 and
// domain/logistics pick up the difference.
func ReducedCultureWeights() WeightSet {
	return WeightSet{Skills: 45, Experience: 20, Culture: 10, Domain: 15, Logistics: 10}
}

// Resolve selects the weight table for one evaluation. The choice is keyed
// solely on whether the explicit culture signal was present and used.
func Resolve(explicitCulture bool) WeightSet {
	if explicitCulture {
		return FullWeights()
	}
	return ReducedCultureWeights()
}

// Sum returns the total of all weights.
func (w WeightSet) Sum() int {
	return w.Skills + w.Experience + w.Culture + w.Domain + w.Logistics
}
