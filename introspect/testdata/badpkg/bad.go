package badpkg

//gettergen:type clone
type Alias = int
