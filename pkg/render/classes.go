package render

// Class is a conditional class name.
type Class struct {
	Name string
	On   bool
}

// ClassMap returns the names of the classes that are on, in order, after
// the unconditional base classes.
func ClassMap(base []string, classes ...Class) []string {
	out := append([]string(nil), base...)
	for _, c := range classes {
		if c.On && c.Name != "" {
			out = append(out, c.Name)
		}
	}
	return out
}
