// Player orders: validated, synchronous edits to the snapshot. Failures are
// tagged sentinel errors so callers can branch on the kind without parsing
// messages; domain no-ops elsewhere in the engine are values, never errors.
package engine

import (
	"errors"
	"fmt"

	"github.com/talgya/starhold/internal/econ"
	"github.com/talgya/starhold/internal/science"
)

var (
	ErrSectorNotFound      = errors.New("sector not found")
	ErrShipNotFound        = errors.New("ship not found")
	ErrShipNotAvailable    = errors.New("ship not available")
	ErrNoShipsSelected     = errors.New("no ships selected")
	ErrDomainUnknown       = errors.New("science domain unknown")
	ErrResourceUnknown     = errors.New("resource unknown")
	ErrCorporationNotFound = errors.New("corporation not found")
	ErrInvalidAmount       = errors.New("invalid amount")
)

// SetScienceFocus focuses one science domain by name, clearing any previous
// focus; an empty name clears focus entirely. At most one domain carries
// focus at a time.
func SetScienceFocus(st *State, fieldName string) (*State, error) {
	var target science.Field
	found := fieldName == ""
	for _, f := range science.AllFields {
		if f.String() == fieldName {
			target = f
			found = true
			break
		}
	}
	if !found {
		return nil, ErrDomainUnknown
	}

	ns := st.Clone()
	for _, f := range science.AllFields {
		if ds, ok := ns.Science[f]; ok {
			ds.Focused = fieldName != "" && f == target
		}
	}
	return ns, nil
}

// CreateSurveyMission validates and registers a survey mission: the sector
// must exist, at least one ship must be named, and every ship must exist and
// be idle. Selected ships are marked on-mission.
func CreateSurveyMission(st *State, sectorID string, shipIDs []string) (*State, error) {
	if _, ok := st.Sectors[sectorID]; !ok {
		return nil, ErrSectorNotFound
	}
	if len(shipIDs) == 0 {
		return nil, ErrNoShipsSelected
	}
	for _, id := range shipIDs {
		ship, ok := st.Ships[id]
		if !ok {
			return nil, ErrShipNotFound
		}
		if ship.Status != ShipIdle {
			return nil, ErrShipNotAvailable
		}
	}

	ns := st.Clone()
	m := &Mission{
		ID:          fmt.Sprintf("MSN-%s-%d", sectorID, ns.Turn),
		SectorID:    sectorID,
		ShipIDs:     append([]string(nil), shipIDs...),
		CreatedTurn: ns.Turn,
	}
	ns.Missions[m.ID] = m
	for _, id := range shipIDs {
		ns.Ships[id].Status = ShipOnMission
		ns.Ships[id].SectorID = sectorID
	}
	return ns, nil
}

// CreateSupplyContract validates and registers a standing supply contract
// for a corporation in a sector.
func CreateSupplyContract(st *State, sectorID, corpID string, resource econ.Resource, amount int) (*State, error) {
	if _, ok := st.Sectors[sectorID]; !ok {
		return nil, ErrSectorNotFound
	}
	if _, ok := st.Corporations[corpID]; !ok {
		return nil, ErrCorporationNotFound
	}
	if int(resource) >= len(econ.AllResources) {
		return nil, ErrResourceUnknown
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	ns := st.Clone()
	ct := &Contract{
		ID:            fmt.Sprintf("CTR-%s-%s-%d", sectorID, corpID, ns.Turn),
		SectorID:      sectorID,
		CorporationID: corpID,
		Resource:      resource,
		Amount:        amount,
		CreatedTurn:   ns.Turn,
	}
	ns.Contracts[ct.ID] = ct
	return ns, nil
}
