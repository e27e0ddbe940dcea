package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRegistry_GetProfiles(t *testing.T) {
	// Given
	path := writeConfig(t, "sales-report.ini", `[karachi]
input = data/karachi.csv
report = karachi.pdf

[empty]

[lahore]
input = data/lahore.xlsx
sheet = Orders
`)
	registry, err := NewProfileRegistry(path)
	require.NoError(t, err)

	// When
	profiles, err := registry.GetProfiles(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, "karachi", profiles[0].Name)
	assert.Equal(t, "data/karachi.csv", profiles[0].Settings["input"])
	assert.Equal(t, "lahore", profiles[1].Name)
	assert.Equal(t, "lahore:input,sheet", profiles[1].String())
}

func TestProfileRegistry_GetProfile(t *testing.T) {
	path := writeConfig(t, "sales-report.ini", "[karachi]\ninput = k.csv\n")
	registry, err := NewProfileRegistry(path)
	require.NoError(t, err)

	p, err := registry.GetProfile(context.Background(), "karachi")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"input": "k.csv"}, p.Settings)

	_, err = registry.GetProfile(context.Background(), "quetta")
	assert.Error(t, err)
}

func TestNewProfileRegistry_MissingFile(t *testing.T) {
	_, err := NewProfileRegistry("does-not-exist.ini")

	assert.Error(t, err)
}

func TestProfileRegistry_GetProfiles_SkipsTopLevelKeys(t *testing.T) {
	// Given keys above the first section
	path := writeConfig(t, "sales-report.ini", "top_n = 3\n\n[karachi]\ninput = k.csv\n")
	registry, err := NewProfileRegistry(path)
	require.NoError(t, err)

	// When
	profiles, err := registry.GetProfiles(context.Background())

	// Then
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "karachi", profiles[0].Name)
}
