package maze

// Decide picks the next move from a reading and the costs of the neighbours
// it leaves open. cost is only consulted for open sides.
//
// Ties go to straight first, then right.
func Decide(r Reading, cost func(Turn) Cost) (Turn, error) {
	switch r {
	case Open:
		s, rt, l := cost(Straight), cost(Right), cost(Left)
		if s <= rt && s <= l {
			return Straight, nil
		}
		if rt > l {
			return Left, nil
		}
		return Right, nil
	case RightBlocked:
		if cost(Straight) <= cost(Left) {
			return Straight, nil
		}
		return Left, nil
	case LeftBlocked:
		if cost(Straight) <= cost(Right) {
			return Straight, nil
		}
		return Right, nil
	case FrontBlocked:
		if cost(Right) <= cost(Left) {
			return Right, nil
		}
		return Left, nil
	case RightBlocked | LeftBlocked:
		return Straight, nil
	case RightBlocked | FrontBlocked:
		return Left, nil
	case LeftBlocked | FrontBlocked:
		return Right, nil
	case DeadEnd:
		return Reverse, nil
	default:
		return 0, &InvalidReadingError{Value: int(r)}
	}
}
