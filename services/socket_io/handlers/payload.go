package handlers

// Socket.io event payloads arrive as the first argument, decoded into a
// map with JSON numbers as float64.

func eventPayload(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	payload, ok := args[0].(map[string]interface{})
	return payload, ok
}

func payloadInt(payload map[string]interface{}, key string) (int, bool) {
	raw, exists := payload[key]
	if !exists {
		return 0, false
	}
	f, ok := raw.(float64)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

func payloadString(payload map[string]interface{}, key string) (string, bool) {
	raw, exists := payload[key]
	if !exists {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}
