package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rocketscienceinc/connectn/internal/config"
	"github.com/rocketscienceinc/connectn/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:  "debug",
		BoardSize: 10,
		Players:   2,
		NoColor:   true,
		Storage:   config.StorageMemory,
	}
}

func TestRunApp(t *testing.T) {
	t.Run("Plays a game to a win", func(t *testing.T) {
		// Given: input where player 0 fills column 2 and one line is garbage
		input := strings.Join([]string{
			"0 2", "0 3",
			"1 2", "1 3",
			"2 2", "nope",
			"2 3",
			"3 2", "3 3",
			"4 2",
		}, "\n") + "\n"

		var out bytes.Buffer

		// When: the app runs on it
		err := RunApp(suite.NewLogger(t), testConfig(), Options{In: strings.NewReader(input), Out: &out})

		// Then: the rejection and the winner are shown
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Game ")
		assert.Contains(t, out.String(), `Please enter a row and a column, e.g. "7 7".`)
		assert.Contains(t, out.String(), "Player 0 wins with a vertical run!")
	})

	t.Run("Input ending early is not an error", func(t *testing.T) {
		var out bytes.Buffer

		err := RunApp(suite.NewLogger(t), testConfig(), Options{In: strings.NewReader("5 5\n"), Out: &out})

		require.NoError(t, err)
		assert.NotContains(t, out.String(), "wins")
	})

	t.Run("Unknown resume id fails", func(t *testing.T) {
		var out bytes.Buffer

		err := RunApp(suite.NewLogger(t), testConfig(), Options{ResumeID: "missing", In: strings.NewReader(""), Out: &out})

		assert.Error(t, err)
	})

	t.Run("Invalid board size fails", func(t *testing.T) {
		conf := testConfig()
		conf.BoardSize = 0

		err := RunApp(suite.NewLogger(t), conf, Options{In: strings.NewReader(""), Out: &bytes.Buffer{}})

		assert.Error(t, err)
	})
}
