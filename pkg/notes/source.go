package notes

// Source is anything that releases notes as the simulation clock advances.
type Source interface {
	Advance(dt float64) []Note
	Done() bool
}

var (
	_ Source = &Scheduler{}
	_ Source = &Generator{}
)
