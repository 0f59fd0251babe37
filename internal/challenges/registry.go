package challenges

import (
	"fmt"
	"sort"
)

// Env carries the external resources a challenge may need.
type Env struct {
	// DataDir is the directory holding the challenge data files.
	DataDir string
}

// Func runs a single challenge and returns its result.
type Func func(env *Env) (*Result, error)

// Info identifies a registered challenge.
type Info struct {
	Set         int
	Challenge   int
	Description string
}

type entry struct {
	info Info
	fn   Func
}

var registry = []entry{
	{Info{1, 1, "Convert hex to base64"}, Challenge01},
	{Info{1, 2, "Fixed XOR"}, Challenge02},
	{Info{1, 3, "Single-byte XOR cipher"}, Challenge03},
	{Info{1, 4, "Detect single-character XOR"}, Challenge04},
	{Info{1, 5, "Implement repeating-key XOR"}, Challenge05},
	{Info{1, 6, "Break repeating-key XOR"}, Challenge06},
	{Info{1, 7, "AES in ECB mode"}, Challenge07},
	{Info{1, 8, "Detect AES in ECB mode"}, Challenge08},
	{Info{2, 9, "Implement PKCS#7 padding"}, Challenge09},
	{Info{2, 10, "Implement CBC mode"}, Challenge10},
	{Info{2, 11, "An ECB/CBC detection oracle"}, Challenge11},
	{Info{2, 12, "Byte-at-a-time ECB decryption (Simple)"}, Challenge12},
	{Info{2, 13, "ECB cut-and-paste"}, Challenge13},
	{Info{2, 14, "Byte-at-a-time ECB decryption (Harder)"}, Challenge14},
	{Info{2, 15, "PKCS#7 padding validation"}, Challenge15},
}

// Lookup returns the challenge registered under the given set and challenge
// number.
func Lookup(set, challenge int) (Info, Func, error) {
	for _, e := range registry {
		if e.info.Set == set && e.info.Challenge == challenge {
			return e.info, e.fn, nil
		}
	}
	return Info{}, nil, fmt.Errorf("no challenge registered for set %d challenge %d", set, challenge)
}

// List returns the info of every registered challenge, ordered by set and
// challenge number.
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Set != infos[j].Set {
			return infos[i].Set < infos[j].Set
		}
		return infos[i].Challenge < infos[j].Challenge
	})
	return infos
}
