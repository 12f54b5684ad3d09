package trivia

import (
	"math/rand"
	"slices"
	"strings"
)

var fakeSuffixes = []string{"-Fake", "-NotAProject", "-Twist", "_X"}

const fakeBaseMaxLength = 20

// MakeFake derives a fabricated name from a real one: first whitespace token,
// truncated, plus a random suffix. The result is guaranteed disjoint from
// every name in taken.
func MakeFake(r *rand.Rand, real string, taken []string) string {
	base := real
	if fields := strings.Fields(real); len(fields) > 0 {
		base = fields[0]
	}
	if len(base) > fakeBaseMaxLength {
		base = base[:fakeBaseMaxLength]
	}

	order := r.Perm(len(fakeSuffixes))
	for _, i := range order {
		if fake := base + fakeSuffixes[i]; !slices.Contains(taken, fake) {
			return fake
		}
	}

	// Every suffix collided with a real name. Extend until disjoint.
	fake := base + fakeSuffixes[order[0]]
	for slices.Contains(taken, fake) {
		fake += "X"
	}
	return fake
}

func truncateName(name string, maxLen int) string {
	if len(name) <= maxLen {
		return name
	}
	return name[:maxLen-3] + "..."
}
