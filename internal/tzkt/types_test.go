package tzkt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tzscout/tzscout/internal/tzkt"
)

func TestClassifyAddress(t *testing.T) {
	tests := map[string]struct {
		addr     string
		expected tzkt.AddressKind
	}{
		"tz1 user address": {
			addr:     "tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx",
			expected: tzkt.AddressUser,
		},
		"tz2 user address": {
			addr:     "tz2BFTyPeYRzxd5aiBchbXN3WCZhx7BqbMBq",
			expected: tzkt.AddressUser,
		},
		"tz3 user address": {
			addr:     "tz3RDC3Jdn4j15J7bBHZd29EUee9gVB1CxD9",
			expected: tzkt.AddressUser,
		},
		"contract address": {
			addr:     "KT1BEqzn5Wx8uJrZNvuS9DVHmLvG9td3fDLi",
			expected: tzkt.AddressContract,
		},
		"tz4 is not a user prefix": {
			addr:     "tz4HVR6aty9KwsQFHh81C1G7gBdhxT8kuytm",
			expected: tzkt.AddressUnknown,
		},
		"kt1 lowercase": {
			addr:     "kt1BEqzn5Wx8uJrZNvuS9DVHmLvG9td3fDLi",
			expected: tzkt.AddressUnknown,
		},
		"base58 violations rejected": {
			addr:     "tz1O0Il", // 0, O, I and l are not base58
			expected: tzkt.AddressUnknown,
		},
		"block level": {
			addr:     "123456",
			expected: tzkt.AddressUnknown,
		},
		"empty": {
			addr:     "",
			expected: tzkt.AddressUnknown,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, tzkt.ClassifyAddress(test.addr))
		})
	}
}
