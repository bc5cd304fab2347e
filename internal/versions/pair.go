package versions

// Pair is one leaf of the expansion: a single language version and a single
// framework version.
type Pair struct {
	Language  string `yaml:"language"`
	Framework string `yaml:"framework"`
}

func (p Pair) String() string {
	return p.Language + "/" + p.Framework
}

// Expand calls fn once per pair of the cross product of lang and fw. When lang
// is a list, each element is expanded against fw as given; otherwise a list fw
// is expanded against the scalar language version. The first error returned
// by fn stops the expansion and is returned unchanged.
func Expand(lang, fw Arg, fn func(Pair) error) error {
	if lang.IsMany() {
		for _, l := range lang.values {
			if err := Expand(Single(l), fw, fn); err != nil {
				return err
			}
		}
		return nil
	}
	if fw.IsMany() {
		for _, f := range fw.values {
			if err := Expand(lang, Single(f), fn); err != nil {
				return err
			}
		}
		return nil
	}
	if len(lang.values) == 0 || len(fw.values) == 0 {
		return nil
	}
	return fn(Pair{Language: lang.values[0], Framework: fw.values[0]})
}

// Pairs collects the expansion into a slice.
func Pairs(lang, fw Arg) []Pair {
	var pairs []Pair
	_ = Expand(lang, fw, func(p Pair) error {
		pairs = append(pairs, p)
		return nil
	})
	return pairs
}
