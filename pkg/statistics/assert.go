//go:build !meshstatsdebug

package statistics

import "github.com/deadsy/sdfx/sdf"

// Construction checks are compiled out unless built with
// -tags=meshstatsdebug; callers are trusted to pass consistent values.

func checkGeometric(_, _ int, _, _, _ float64, _ sdf.Box3) {}

func checkTopological(_, _ int) {}
