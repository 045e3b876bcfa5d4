package enrich

import "github.com/pfrederiksen/golf-catalog/internal/course"

// DefaultArchitects lists well-known architects, most specific first.
var DefaultArchitects = Table{
	{Value: "Alister MacKenzie", Triggers: []string{"alister mackenzie", "mackenzie"}},
	{Value: "Donald Ross", Triggers: []string{"donald ross"}},
	{Value: "Pete Dye", Triggers: []string{"pete dye", "p. dye"}},
	{Value: "Jack Nicklaus", Triggers: []string{"jack nicklaus", "nicklaus"}},
	{Value: "Ben Crenshaw", Triggers: []string{"ben crenshaw", "crenshaw"}},
	{Value: "Bill Coore", Triggers: []string{"bill coore", "coore"}},
	{Value: "A.W. Tillinghast", Triggers: []string{"a.w. tillinghast", "tillinghast"}},
	{Value: "Hugh Wilson", Triggers: []string{"hugh wilson"}},
	{Value: "Old Tom Morris", Triggers: []string{"old tom morris", "tom morris"}},
	{Value: "Harry Colt", Triggers: []string{"harry colt", "h.s. colt"}},
	{Value: "Tom Weiskopf", Triggers: []string{"tom weiskopf", "weiskopf"}},
	{Value: "Tom Fazio", Triggers: []string{"tom fazio", "fazio"}},
	{Value: "Robert Trent Jones", Triggers: []string{"robert trent jones", "rtj"}},
	{Value: "George Thomas", Triggers: []string{"george thomas", "george c. thomas"}},
	{Value: "William Flynn", Triggers: []string{"william flynn"}},
	{Value: "Perry Maxwell", Triggers: []string{"perry maxwell"}},
	{Value: "Walter Travis", Triggers: []string{"walter travis"}},
	{Value: "Charles Blair Macdonald", Triggers: []string{"charles blair macdonald", "c.b. macdonald"}},
	{Value: "Seth Raynor", Triggers: []string{"seth raynor", "raynor"}},
	{Value: "Tom Doak", Triggers: []string{"tom doak", "doak"}},
	{Value: "Gil Hanse", Triggers: []string{"gil hanse", "hanse"}},
}

// Architect derives the course designer from description and blurb.
type Architect struct {
	Table Table
}

func (a *Architect) Name() string     { return "architect" }
func (a *Architect) Fields() []string { return []string{course.FieldArchitect} }

func (a *Architect) Derive(c *course.Course) []Value {
	if name, ok := a.Table.Lookup(c.Text()); ok {
		return []Value{{Field: course.FieldArchitect, Value: name}}
	}
	return nil
}
