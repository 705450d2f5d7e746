package utils

// Little-endian bit packing for frame payloads. Lengths outside 1..64 are
// treated as empty fields.

func fieldMask(bitLen int) uint64 {
	if bitLen >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bitLen) - 1
}

func getBits(payload uint64, startBit, bitLen int) uint64 {
	if bitLen <= 0 || bitLen > 64 {
		return 0
	}
	return (payload >> startBit) & fieldMask(bitLen)
}

func setBits(payload uint64, startBit, bitLen int, value uint64) uint64 {
	if bitLen <= 0 || bitLen > 64 {
		return payload
	}
	mask := fieldMask(bitLen)
	payload &^= mask << startBit
	payload |= (value & mask) << startBit
	return payload
}

// signExtend interprets the low bitLen bits of u as a two's complement value.
func signExtend(u uint64, bitLen int, signed bool) int64 {
	if !signed || bitLen >= 64 {
		return int64(u)
	}
	if u&(uint64(1)<<(bitLen-1)) == 0 {
		return int64(u)
	}
	return int64(u | ^fieldMask(bitLen))
}

func truncate(raw int64, bitLen int) uint64 {
	return uint64(raw) & fieldMask(bitLen)
}

func clamp(v, lo, hi float64) float64 {
	if lo == 0 && hi == 0 {
		return v
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// rawRange returns the representable raw range of a field.
func rawRange(bitLen int, signed bool) (int64, int64) {
	if bitLen <= 0 || bitLen > 63 {
		return -1 << 63, 1<<63 - 1
	}
	if !signed {
		return 0, int64(1)<<bitLen - 1
	}
	return -(int64(1) << (bitLen - 1)), int64(1)<<(bitLen-1) - 1
}

func clampRaw(raw int64, bitLen int, signed bool) int64 {
	lo, hi := rawRange(bitLen, signed)
	if raw < lo {
		return lo
	}
	if raw > hi {
		return hi
	}
	return raw
}
