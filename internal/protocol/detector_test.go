package protocol_test

import (
	"math/rand"
	"testing"

	"github.com/ledgerlens/ledgerlens/internal/protocol"
)

func TestDetectPicksHighestPriority(t *testing.T) {
	ids := []string{protocol.ProgramSystem, protocol.ProgramSplToken, protocol.ProgramRaydiumAmm}
	info, ok := protocol.Detect(ids)
	if !ok {
		t.Fatalf("expected a match")
	}
	if info.Id != "raydium" {
		t.Errorf("Id = %q, want raydium", info.Id)
	}
}

func TestDetectNoMatch(t *testing.T) {
	_, ok := protocol.Detect([]string{"some-unknown-program"})
	if ok {
		t.Errorf("expected no match")
	}
}

func TestDetectOrderIndependent(t *testing.T) {
	base := []string{
		protocol.ProgramSystem,
		protocol.ProgramComputeBudget,
		protocol.ProgramSplToken,
		protocol.ProgramOrcaWhirlpool,
		protocol.ProgramMetaplexTM,
	}
	want, ok := protocol.Detect(base)
	if !ok {
		t.Fatalf("expected a match")
	}

	for i := 0; i < 5; i++ {
		shuffled := append([]string(nil), base...)
		rand.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got, ok := protocol.Detect(shuffled)
		if !ok || got != want {
			t.Errorf("shuffle %d: Detect() = %v, want %v", i, got, want)
		}
	}
}

func TestCategoryPredicates(t *testing.T) {
	if !protocol.IsDex("jupiter") {
		t.Errorf("jupiter should be a dex")
	}
	if !protocol.IsStake("marinade") {
		t.Errorf("marinade should be a stake category")
	}
	if !protocol.IsNftMint("bubblegum") {
		t.Errorf("bubblegum should be nft-mint")
	}
	if !protocol.IsBridge("wormhole") {
		t.Errorf("wormhole should be a bridge")
	}
	if !protocol.IsPrivacy("privacy-cash") {
		t.Errorf("privacy-cash should be privacy")
	}
	if !protocol.IsLending("solend") {
		t.Errorf("solend should be lending")
	}
}
