package scanpkg

//gettergen:type mutable,clone,deref
type Vector3 struct {
	x float32
	//gettergen:field skip_deref
	y float32
	z float32
}

// Plain carries no directive and is ignored.
type Plain struct {
	A int
}

//gettergen:type
type Server struct {
	//gettergen:field skip
	secret string
	cfg    *Config
	peers  []string
	x, y   int
}

type Config struct{}
