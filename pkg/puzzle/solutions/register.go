package solutions

import "github.com/yaklabco/goaoc/pkg/puzzle"

// RegisterAll registers all built-in solvers with the given registry.
func RegisterAll(registry *puzzle.Registry) {
	registry.Register(NewCalorieCounting()) // 2022-01

	registry.Register(NewTrebuchet())      // 2023-01
	registry.Register(NewCubeConundrum())  // 2023-02
	registry.Register(NewGearRatios())     // 2023-03
	registry.Register(NewScratchcards())   // 2023-04
	registry.Register(NewSeedFertilizer()) // 2023-05
	registry.Register(NewWaitForIt())      // 2023-06
}

// RegisterAliases registers short names for solvers whose canonical name is
// the full puzzle title.
func RegisterAliases(registry *puzzle.Registry) {
	registry.RegisterAlias("calories", "2022-01")
	registry.RegisterAlias("cubes", "2023-02")
	registry.RegisterAlias("gears", "2023-03")
	registry.RegisterAlias("seeds", "2023-05")
	registry.RegisterAlias("almanac", "2023-05")
	registry.RegisterAlias("races", "2023-06")
}

// init registers all built-in solvers with the default registry.
//
//nolint:gochecknoinits // Init is intentional for automatic solver registration
func init() {
	RegisterAll(puzzle.DefaultRegistry)
	RegisterAliases(puzzle.DefaultRegistry)
}
