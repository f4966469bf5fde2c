package scanpkg

//gettergen:type clone
type Skipped struct {
	a int
}
