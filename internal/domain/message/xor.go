package message

// XOR combines the given data with a repeating key, cycling the key over the
// length of the data. An empty key leaves the data unchanged.
func XOR(data, key Message) Message {
	if len(key.bytes) == 0 {
		return FromBytes(data.bytes)
	}

	out := make([]byte, len(data.bytes))
	for ix, b := range data.bytes {
		out[ix] = b ^ key.bytes[ix%len(key.bytes)]
	}
	return Message{bytes: out}
}
