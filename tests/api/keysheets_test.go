package api_test

import (
	"bytes"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/testutils"
)

type randomKeysheetSchema struct {
	Keysheet keysheetSchema `json:"keysheet"`
	Seed     string         `json:"seed"`
}

func TestAPI_RandomKeysheet_Seeded(t *testing.T) {
	var first, second randomKeysheetSchema

	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/keysheets/random?seed=18446744073709551615", nil,
		testutils.MustBindJSON(&first),
	)
	require.Equal(t, 200, resp.StatusCode)
	testutils.DoTestRequest(
		ts, http.MethodGet, "/api/keysheets/random?seed=18446744073709551615", nil,
		testutils.MustBindJSON(&second),
	)

	assert.Equal(t, "18446744073709551615", first.Seed)
	assert.Equal(t, first, second)
}

func TestAPI_RandomKeysheet_Unseeded(t *testing.T) {
	var respJSON randomKeysheetSchema

	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/keysheets/random", nil,
		testutils.MustBindJSON(&respJSON),
	)
	require.Equal(t, 200, resp.StatusCode)

	_, err := strconv.ParseUint(respJSON.Seed, 10, 64)
	assert.NoError(t, err)

	ks := respJSON.Keysheet
	assert.Contains(t, []string{"B", "C"}, ks.Reflector)
	require.Len(t, ks.Rotors, 3)
	assert.NotEqual(t, ks.Rotors[0], ks.Rotors[1])
	assert.NotEqual(t, ks.Rotors[1], ks.Rotors[2])
	assert.NotEqual(t, ks.Rotors[0], ks.Rotors[2])
	for i := range 3 {
		assert.GreaterOrEqual(t, ks.Rings[i], 0)
		assert.Less(t, ks.Rings[i], 26)
		assert.GreaterOrEqual(t, ks.Positions[i], 0)
		assert.Less(t, ks.Positions[i], 26)
	}
	assert.Len(t, ks.Plugboard, 17)
}

func TestAPI_RandomKeysheet_UsableForEncryption(t *testing.T) {
	var random randomKeysheetSchema
	var encrypted encryptRespSchema

	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	testutils.DoTestRequest(
		ts, http.MethodGet, "/api/keysheets/random?seed=42", nil,
		testutils.MustBindJSON(&random),
	)

	payload := testutils.MustJSON(encryptReqSchema{Keysheet: random.Keysheet, Text: "HELLO"})
	resp := testutils.DoTestRequest(
		ts, http.MethodPost, "/api/encrypt", bytes.NewReader(payload),
		testutils.MustBindJSON(&encrypted),
	)
	require.Equal(t, 200, resp.StatusCode)
	assert.Len(t, encrypted.Text, 5)
	assert.Len(t, encrypted.Plugboard, 6)
}

func TestAPI_RandomKeysheet_InvalidSeed(t *testing.T) {
	for _, seed := range []string{"-1", "abc", "18446744073709551616"} {
		t.Run(seed, func(t *testing.T) {
			var respJSON errorSchema

			ts, cancel := testutils.PrepareTestServer(t)
			defer cancel()

			resp := testutils.DoTestRequest(
				ts, http.MethodGet, "/api/keysheets/random?seed="+seed, nil,
				testutils.MustBindJSON(&respJSON),
			)
			assert.Equal(t, 400, resp.StatusCode)
			assert.NotEmpty(t, respJSON.Error)
		})
	}
}
