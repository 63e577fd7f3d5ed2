package apint

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	maxUint64Float  = float64(maxUint64)     // (1<<64) - 1
	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	intSize = 32 << (^uint(0) >> 63)
)

// These are inline values, initialised statically; using them never
// allocates.
var (
	ZeroNat = Nat{}
	OneNat  = Nat{d: digits{inl: [InlineLimbs]Limb{1}, n: 1}}

	ZeroInt   = Int{}
	OneInt    = Int{mag: OneNat}
	NegOneInt = Int{mag: OneNat, neg: true}
)
