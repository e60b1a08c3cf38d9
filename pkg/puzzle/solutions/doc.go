// Package solutions provides the built-in puzzle solvers for goaoc.
//
// # Solvers
//
//   - 2022-01: calorie-counting - Largest and top-three calorie totals
//
//   - 2023-01: trebuchet - Calibration values from digits and spelled digits
//
//   - 2023-02: cube-conundrum - Possible games and minimum cube sets
//
//   - 2023-03: gear-ratios - Part numbers and gear ratios on a schematic
//
//   - 2023-04: scratchcards - Card points and the copy cascade
//
//   - 2023-05: seed-fertilizer - Lowest location through the almanac pipeline
//
//   - 2023-06: wait-for-it - Ways to beat the record distance
//
// Every solver registers itself with puzzle.DefaultRegistry on import.
package solutions
