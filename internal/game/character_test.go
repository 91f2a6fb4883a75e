package game

import (
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/cardquest/internal/random"
)

// fixedSource returns value, capped at n-1.
type fixedSource struct {
	value int
	calls []int
}

func (f *fixedSource) Intn(n int) int {
	f.calls = append(f.calls, n)
	if f.value >= n {
		return n - 1
	}
	return f.value
}

func newNamedCharacter(first, last string) *PlayerCharacter {
	p := NewPlayerCharacter(nil)
	p.FirstName = first
	p.LastName = last
	return p
}

func TestNewPlayerCharacterIsNovice(t *testing.T) {
	if !NewPlayerCharacter(nil).IsNovice() {
		t.Fatal("expected new character to be a novice")
	}
}

func TestFullName(t *testing.T) {
	p := newNamedCharacter("Sarah", "Smith")

	if got := p.FullName(); got != "Sarah Smith" {
		t.Fatalf("FullName = %q, want %q", got, "Sarah Smith")
	}
	if !strings.HasPrefix(p.FullName(), "Sarah") {
		t.Fatalf("FullName %q does not start with first name", p.FullName())
	}
	if !strings.HasSuffix(p.FullName(), "Smith") {
		t.Fatalf("FullName %q does not end with last name", p.FullName())
	}
	if !strings.Contains(p.FullName(), "ah Sm") {
		t.Fatalf("FullName %q does not contain %q", p.FullName(), "ah Sm")
	}
	if !regexp.MustCompile(`[A-Z][a-z]+ [A-Z][a-z]+`).MatchString(p.FullName()) {
		t.Fatalf("FullName %q is not title case", p.FullName())
	}
}

func TestFullNameIgnoringCase(t *testing.T) {
	p := newNamedCharacter("SARAH", "SMITH")

	if !strings.EqualFold(p.FullName(), "Sarah Smith") {
		t.Fatalf("FullName = %q, want %q ignoring case", p.FullName(), "Sarah Smith")
	}
}

func TestFullNameWithOnlyLastName(t *testing.T) {
	p := newNamedCharacter("", "Smith")

	if !strings.HasSuffix(p.FullName(), "Smith") {
		t.Fatalf("FullName %q does not end with last name", p.FullName())
	}
}

func TestStartsWithDefaultHealth(t *testing.T) {
	p := NewPlayerCharacter(nil)

	if p.Health != DefaultHealth {
		t.Fatalf("Health = %d, want %d", p.Health, DefaultHealth)
	}
	if p.Health == 0 {
		t.Fatal("expected non-zero health")
	}
}

func TestSleepIncreasesHealth(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		p := NewPlayerCharacter(random.NewRand(seed))

		p.Sleep()

		if p.Health < 101 || p.Health > 200 {
			t.Fatalf("seed %d: Health = %d, want within [101, 200]", seed, p.Health)
		}
	}
}

func TestSleepWithGlobalSource(t *testing.T) {
	p := NewPlayerCharacter(nil)

	p.Sleep()

	if p.Health < 101 || p.Health > 200 {
		t.Fatalf("Health = %d, want within [101, 200]", p.Health)
	}
}

func TestSleepUsesInjectedSource(t *testing.T) {
	tests := []struct {
		name     string
		draw     int
		wantGain int
	}{
		{"smallest", 0, 1},
		{"middle", 41, 42},
		{"largest", 99, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fixedSource{value: tt.draw}
			p := NewPlayerCharacter(src)

			gain := p.Sleep()

			if gain != tt.wantGain {
				t.Fatalf("gain = %d, want %d", gain, tt.wantGain)
			}
			if p.Health != DefaultHealth+tt.wantGain {
				t.Fatalf("Health = %d, want %d", p.Health, DefaultHealth+tt.wantGain)
			}
			if len(src.calls) != 1 || src.calls[0] != MaxSleepGain {
				t.Fatalf("Intn calls = %v, want [%d]", src.calls, MaxSleepGain)
			}
			if p.IsNovice() {
				t.Fatal("expected rested character above default health not to be a novice")
			}
		})
	}
}

func TestNoNicknameByDefault(t *testing.T) {
	if got := NewPlayerCharacter(nil).Nickname; got != "" {
		t.Fatalf("Nickname = %q, want empty", got)
	}
}

func TestDefaultWeapons(t *testing.T) {
	weapons := NewPlayerCharacter(nil).Weapons

	if diff := cmp.Diff([]string{"Long Bow", "Short Bow", "Short Sword"}, weapons); diff != "" {
		t.Fatalf("weapons mismatch (-want +got):\n%s", diff)
	}
	if !slices.Contains(weapons, "Long Bow") {
		t.Fatal("expected a Long Bow")
	}
	if slices.Contains(weapons, "Staff Of Wonder") {
		t.Fatal("did not expect a Staff Of Wonder")
	}
	if !slices.ContainsFunc(weapons, func(w string) bool { return strings.Contains(w, "Sword") }) {
		t.Fatal("expected at least one kind of sword")
	}
	for _, w := range weapons {
		if strings.TrimSpace(w) == "" {
			t.Fatalf("blank weapon in %q", weapons)
		}
	}
}

func TestDefaultWeaponsAreNotShared(t *testing.T) {
	first := NewPlayerCharacter(nil)
	second := NewPlayerCharacter(nil)

	first.Weapons[0] = "Staff Of Wonder"

	if second.Weapons[0] != "Long Bow" {
		t.Fatalf("second character weapons changed to %v", second.Weapons)
	}
	if DefaultWeapons()[0] != "Long Bow" {
		t.Fatalf("default weapons changed to %v", DefaultWeapons())
	}
}

func TestTakeDamage(t *testing.T) {
	tests := []struct {
		damage     int
		wantHealth int
	}{
		{0, 100},
		{1, 99},
		{50, 50},
		{99, 1},
		{100, 1},
		{101, 1},
		{-5, 100},
	}
	for _, tt := range tests {
		p := NewPlayerCharacter(nil)

		p.TakeDamage(tt.damage)

		if p.Health != tt.wantHealth {
			t.Fatalf("TakeDamage(%d): Health = %d, want %d", tt.damage, p.Health, tt.wantHealth)
		}
	}
}

func TestTakeDamageEndsNoviceStatus(t *testing.T) {
	p := NewPlayerCharacter(nil)

	p.TakeDamage(0)
	if !p.IsNovice() {
		t.Fatal("expected zero damage to keep novice status")
	}

	p.TakeDamage(10)
	p.Health = DefaultHealth
	if p.IsNovice() {
		t.Fatal("expected damaged character not to be a novice even at default health")
	}
}
