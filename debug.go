package deci

// debugDeci enables expensive, panic-based consistency checks of the
// preconditions documented on each function. It mirrors db47h/decimal's
// debugDecimal flag: always on here, since this kernel is small enough that
// the extra checks cost little next to the confidence they buy, and unlike
// that package's release-mode float type, deci has no hot inner loop that
// ships to end users with this flag off.
const debugDeci = true
