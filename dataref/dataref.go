package dataref

import (
	"strings"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
	"github.com/simbridge-dev/simbridge-sdk/domain/errors"
	"github.com/simbridge-dev/simbridge-sdk/domain/ports"
)

// Find looks up a data ref by name. It fails with NameEncodingError before
// any host call if the name embeds a NUL, and with InvalidHandleError if
// the host knows no data ref by that name.
func Find(host ports.DataAccess, name string) (entities.DataRef, error) {
	if strings.ContainsRune(name, 0) {
		return entities.DataRef{}, &errors.NameEncodingError{Field: "data ref name"}
	}
	return entities.WrapDataRef(host.FindDataRef(name))
}

// Count returns the total number of data refs registered with the host.
func Count(host ports.DataAccess) int {
	return int(host.CountDataRefs())
}

// ByIndex enumerates the data refs in the half-open index window
// [offset, offset+count). Sentinel entries the host reports inside the
// window are skipped rather than wrapped.
func ByIndex(host ports.DataAccess, offset, count int) []entities.DataRef {
	raws := host.DataRefsByIndex(int32(offset), int32(count))
	refs := make([]entities.DataRef, 0, len(raws))
	for _, raw := range raws {
		ref, err := entities.WrapDataRef(raw)
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

// Info returns the host's metadata snapshot for a data ref. The Writable
// field reflects the host's predicate at the moment of the probe only.
func Info(host ports.DataAccess, ref entities.DataRef) (entities.DataRefInfo, error) {
	if !host.IsDataRefGood(ref.Raw()) {
		return entities.DataRefInfo{}, &errors.OrphanedHandleError{Kind: "data ref"}
	}
	raw := host.DataRefInfo(ref.Raw())
	return entities.DataRefInfo{
		Name:     raw.Name,
		Types:    entities.DataTypeID(raw.Types),
		Writable: raw.Writable,
		Owner:    raw.Owner,
	}, nil
}
