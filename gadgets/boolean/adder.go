package boolean

// Adder returns the sum and carry-out bits of a + b + carryIn.
func Adder(a, b, carryIn Bit) (sum, carryOut Bit) {
	axb := a.Xor(b)
	sum = axb.Xor(carryIn)
	carryOut = a.And(b).Or(axb.And(carryIn))
	return sum, carryOut
}

// Subtractor returns the difference and borrow-out bits of a - b - borrowIn.
func Subtractor(a, b, borrowIn Bit) (difference, borrowOut Bit) {
	axb := a.Xor(b)
	difference = axb.Xor(borrowIn)
	borrowOut = a.Not().And(b).Or(borrowIn.And(axb.Not()))
	return difference, borrowOut
}
