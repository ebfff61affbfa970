// Package judgement maps validated domain values onto canonical judgements.
//
// Binary tools score 1 as Low risk and 0 as High risk; categorical tools use
// their tokens verbatim. The mapping is pure and never touches the table.
package judgement
