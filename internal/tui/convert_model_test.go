package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokenconv/tokenconv/internal/catalog"
	"github.com/tokenconv/tokenconv/internal/pricing"
)

// liveTokens is a loaded catalog set with distinctive prices.
func liveTokens() []catalog.Token {
	return []catalog.Token{
		{Symbol: "USDC", Name: "USD Coin", Price: 1, Icon: "💵", ChainID: "1"},
		{Symbol: "USDT", Name: "Tether USD", Price: 1, Icon: "💲", ChainID: "137"},
		{Symbol: "ETH", Name: "Ethereum", Price: 2500, Icon: "⟠", ChainID: "8453"},
		{Symbol: "WBTC", Name: "Wrapped Bitcoin", Price: 45000, Icon: "₿", ChainID: "1"},
	}
}

func loadedModel(t *testing.T) ConvertModel {
	t.Helper()
	m := NewConvertModel(context.Background(), func(context.Context) pricing.Result {
		return pricing.Result{Tokens: liveTokens()}
	})
	updated, _ := m.Update(tokensLoadedMsg{result: pricing.Result{Tokens: liveTokens()}})
	return updated.(ConvertModel)
}

func typeString(t *testing.T, m ConvertModel, s string) ConvertModel {
	t.Helper()
	for _, r := range s {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(ConvertModel)
	}
	return m
}

func TestNewConvertModel(t *testing.T) {
	m := NewConvertModel(context.Background(), func(context.Context) pricing.Result {
		return pricing.Result{Tokens: liveTokens()}
	})

	assert.Equal(t, ConvertStateLoading, m.State())
	assert.Equal(t, "USDC", m.LeftToken().Symbol)
	assert.Equal(t, "ETH", m.RightToken().Symbol)
	assert.NotNil(t, m.Init())
}

func TestConvertModel_TokensLoaded(t *testing.T) {
	m := loadedModel(t)

	assert.Equal(t, ConvertStateReady, m.State())
	assert.Empty(t, m.Banner())
	assert.Equal(t, 2500.0, m.RightToken().Price)
}

func TestConvertModel_BannerOnBatchFailure(t *testing.T) {
	m := NewConvertModel(context.Background(), nil)
	fallbacks := make([]catalog.Token, 0, catalog.Size)
	for _, e := range catalog.Entries() {
		fallbacks = append(fallbacks, catalog.Fallback(e))
	}

	updated, _ := m.Update(tokensLoadedMsg{result: pricing.Result{
		Tokens: fallbacks,
		Err:    pricing.ErrAllFetchesFailed,
	}})
	m = updated.(ConvertModel)

	assert.Equal(t, "Failed to load token data", m.Banner())
	assert.Equal(t, ConvertStateReady, m.State(), "banner is non-blocking")
	assert.Contains(t, m.View(), "Failed to load token data")
}

func TestConvertModel_TypingDerivesPairedAmount(t *testing.T) {
	m := loadedModel(t)

	m = typeString(t, m, "1")

	assert.Equal(t, "1", m.LeftAmount())
	assert.Equal(t, "0.000400", m.RightAmount())
}

func TestConvertModel_RejectsInvalidInput(t *testing.T) {
	m := loadedModel(t)

	m = typeString(t, m, "12.34")
	assert.Equal(t, "12.34", m.LeftAmount())
	before := m.RightAmount()

	// A second decimal point must leave all state unchanged.
	m = typeString(t, m, ".5")
	assert.Equal(t, "12.345", m.LeftAmount(), "digits still accepted after rejected dot")
	m2 := typeString(t, m, ".")
	assert.Equal(t, "12.345", m2.LeftAmount())
	assert.NotEqual(t, before, m.RightAmount())

	t.Run("letters are rejected", func(t *testing.T) {
		m := loadedModel(t)
		m = typeString(t, m, "a1b2")
		assert.Equal(t, "12", m.LeftAmount())
	})
}

func TestConvertModel_Swap(t *testing.T) {
	m := loadedModel(t)
	m = typeString(t, m, "1")
	require.Equal(t, "0.000400", m.RightAmount())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(ConvertModel)

	// Tokens and amounts exchanged in one update.
	assert.Equal(t, "ETH", m.LeftToken().Symbol)
	assert.Equal(t, "USDC", m.RightToken().Symbol)
	assert.Equal(t, "0.000400", m.LeftAmount())
	assert.Equal(t, "1", m.RightAmount())
}

func TestConvertModel_SwapRoundTrip(t *testing.T) {
	m := loadedModel(t)
	m = typeString(t, m, "1")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(ConvertModel)

	// Focus followed the typed amount to the right side; retyping it there
	// recomputes the left side back to the original pairing.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = updated.(ConvertModel)
	m = typeString(t, m, "1")

	assert.Equal(t, "1", m.RightAmount())
	assert.Equal(t, "0.000400", m.LeftAmount())
}

func TestConvertModel_CycleToken(t *testing.T) {
	m := loadedModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(ConvertModel)
	assert.Equal(t, "USDT", m.LeftToken().Symbol)

	// Cycling skips the other side's selection (ETH at index 2).
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(ConvertModel)
	assert.Equal(t, "WBTC", m.LeftToken().Symbol)
}

func TestConvertModel_Quit(t *testing.T) {
	m := loadedModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(ConvertModel)

	assert.Equal(t, ConvertStateQuitting, m.State())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	// A late fetch result is discarded, not applied.
	updated, _ = m.Update(tokensLoadedMsg{result: pricing.Result{Err: pricing.ErrAllFetchesFailed}})
	m = updated.(ConvertModel)
	assert.Empty(t, m.Banner())
	assert.Empty(t, m.View())
}

func TestConvertModel_ZeroPriceRendersZero(t *testing.T) {
	m := NewConvertModel(context.Background(), nil)
	tokens := liveTokens()
	tokens[2].Price = 0
	updated, _ := m.Update(tokensLoadedMsg{result: pricing.Result{Tokens: tokens}})
	m = updated.(ConvertModel)

	m = typeString(t, m, "1")
	assert.Equal(t, "0", m.RightAmount(), "divide-by-zero renders as 0")
}
