// Package suggest proposes a next semester: a subset of the candidate
// courses whose total credit weight fits a cap, picked greedily in the
// order of a ranking criterion.
//
// Three criteria are supported, each a strict total order so the selection
// is reproducible:
//
//   - Desbloqueo: descending unlock count, then ascending credits, then
//     ascending code. Favors courses that open the most doors.
//   - Creditos: ascending credits, then descending unlock count, then
//     ascending code. Favors filling the semester with light courses.
//   - Nivel: ascending numeric level (the first digit group of the code,
//     e.g. 1000 for "MAT1000"; codes without digits sort last), then
//     ascending code.
//
// The scan is a greedy bounded-knapsack approximation, not an optimal
// solve: candidates are visited in sorted order and a course is accepted
// whenever its credits fit the remaining budget; too-expensive candidates
// are skipped and the scan continues. An empty selection is a valid result,
// not an error — only a cap below 1 is rejected (ErrInvalidCap).
//
// Complexity: O(C log C) to sort the candidates plus O(C) for the scan.
package suggest
