package challenges

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runChallenge runs the given challenge, skipping the test when its data file
// is not present in the test environment.
func runChallenge(t *testing.T, fn Func) *Result {
	t.Helper()
	result, err := fn(&Env{DataDir: "testdata"})
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		t.Skipf("challenge data file not available: %v", err)
	}
	require.NoError(t, err)
	return result
}

func requireOutput(t *testing.T, result *Result, key string) string {
	t.Helper()
	value, ok := result.Get(key)
	require.True(t, ok, "expected output %q", key)
	return value
}

func TestLookup(t *testing.T) {
	info, fn, err := Lookup(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, info.Set)
	assert.Equal(t, 3, info.Challenge)
	assert.Equal(t, "Single-byte XOR cipher", info.Description)
	assert.NotNil(t, fn)

	_, _, err = Lookup(7, 99)
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	infos := List()
	require.Len(t, infos, 15)
	for i := 1; i < len(infos); i++ {
		prev, curr := infos[i-1], infos[i]
		ordered := prev.Set < curr.Set ||
			(prev.Set == curr.Set && prev.Challenge < curr.Challenge)
		assert.True(t, ordered, "challenges should be listed in order")
	}
}

func TestChallenge01(t *testing.T) {
	result := runChallenge(t, Challenge01)
	assert.Equal(t, "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t",
		requireOutput(t, result, "b64_out"))
}

func TestChallenge02(t *testing.T) {
	result := runChallenge(t, Challenge02)
	assert.Equal(t, "746865206b696420646f6e277420706c6179", requireOutput(t, result, "hex_out"))
}

func TestChallenge03(t *testing.T) {
	result := runChallenge(t, Challenge03)
	assert.Equal(t, "Cooking MC's like a pound of bacon", requireOutput(t, result, "text_out"))
}

func TestChallenge04(t *testing.T) {
	result := runChallenge(t, Challenge04)
	assert.Equal(t, "Now that the party is jumping\n", requireOutput(t, result, "text_out"))
}

func TestChallenge05(t *testing.T) {
	result := runChallenge(t, Challenge05)
	expected := "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272" +
		"a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f"
	assert.Equal(t, expected, requireOutput(t, result, "hex_out"))
}

func TestChallenge06(t *testing.T) {
	result := runChallenge(t, Challenge06)
	assert.Equal(t, "Terminator X: Bring the noise", requireOutput(t, result, "text_key"))
}

func TestChallenge07(t *testing.T) {
	result := runChallenge(t, Challenge07)
	assert.Contains(t, requireOutput(t, result, "text_out"), "Play that funky music")
}

func TestChallenge08(t *testing.T) {
	result := runChallenge(t, Challenge08)
	assert.NotEmpty(t, requireOutput(t, result, "hex_in"))
}

func TestChallenge09(t *testing.T) {
	result := runChallenge(t, Challenge09)
	assert.Equal(t, "59454c4c4f57205355424d4152494e4504040404", requireOutput(t, result, "hex_out"))
}

func TestChallenge10(t *testing.T) {
	result := runChallenge(t, Challenge10)
	assert.Contains(t, requireOutput(t, result, "text_out"), "Play that funky music")
}

func TestChallenge11(t *testing.T) {
	result := runChallenge(t, Challenge11)
	assert.Equal(t, "true", requireOutput(t, result, "success"))
}

func TestChallenge12(t *testing.T) {
	result := runChallenge(t, Challenge12)
	assert.Equal(t, "true", requireOutput(t, result, "success"))
	assert.Contains(t, requireOutput(t, result, "text_out"), "Rollin' in my 5.0")
}

func TestChallenge13(t *testing.T) {
	result := runChallenge(t, Challenge13)
	assert.Equal(t, "true", requireOutput(t, result, "success"))
}

func TestChallenge14(t *testing.T) {
	result := runChallenge(t, Challenge14)
	assert.Equal(t, "true", requireOutput(t, result, "success"))
	assert.Contains(t, requireOutput(t, result, "text_out"), "Rollin' in my 5.0")
}

func TestChallenge15(t *testing.T) {
	result := runChallenge(t, Challenge15)
	assert.Equal(t, "true", requireOutput(t, result, "detect_valid"))
	assert.Equal(t, "true", requireOutput(t, result, "detect_invalid"))
}

func TestResultSucceeded(t *testing.T) {
	tests := []struct {
		name     string
		result   *Result
		expected bool
	}{
		{
			name:     "no success output",
			result:   NewResultBuilder().Output("hex_out", "deadbeef").Finalize(),
			expected: true,
		},
		{
			name:     "success true",
			result:   NewResultBuilder().Output("success", "true").Finalize(),
			expected: true,
		},
		{
			name:     "success false",
			result:   NewResultBuilder().Output("success", "false").Finalize(),
			expected: false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, test.result.Succeeded())
		})
	}
}
