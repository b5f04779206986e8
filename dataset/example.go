// Package dataset: embedded example curriculum for first runs and demos.
package dataset

import "github.com/lrioseco/pmap/core"

// exampleDoc is the seed curriculum shipped with the planner: a small
// engineering slice with Cálculo I already passed.
var exampleDoc = Document{
	Courses: []CourseRecord{
		{Code: "MAT101", Name: "Cálculo I", Credits: 4},
		{Code: "MAT102", Name: "Cálculo II", Credits: 4},
		{Code: "FIS101", Name: "Física I", Credits: 3},
		{Code: "EDA1", Name: "Estructuras de Datos I", Credits: 3},
		{Code: "EDA2", Name: "Estructuras de Datos II", Credits: 4},
	},
	Prerequisites: [][]string{
		{"MAT101", "MAT102"},
		{"MAT101", "FIS101"},
		{"MAT102", "EDA1"},
		{"EDA1", "EDA2"},
	},
	Passed: []string{"MAT101"},
}

// Example builds a fresh store with the embedded example curriculum.
// The document is internally consistent, so construction cannot fail.
func Example() *core.Store {
	s, err := Build(exampleDoc)
	if err != nil {
		panic("dataset: embedded example is invalid: " + err.Error())
	}

	return s
}
