package protocol

// Detect resolves the single protocol a transaction should be
// attributed to from its set of program ids. When more than one
// known protocol is present, the one earliest in priorityOrder wins.
// Detect is order-independent: the result depends only on the set of
// programIds, never on their position in the slice.
func Detect(programIds []string) (Info, bool) {
	present := make(map[string]bool, len(programIds))
	for _, id := range programIds {
		present[id] = true
	}

	detected := make(map[string]Info)
	for programId, info := range registry {
		if present[programId] {
			detected[info.Id] = info
		}
	}

	for _, protoId := range priorityOrder {
		if info, ok := detected[protoId]; ok {
			return info, true
		}
	}
	return Info{}, false
}
