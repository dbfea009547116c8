package kinship

import (
	"context"
	"errors"

	"github.com/mtlprog/whanau/internal/model"
)

func person(id string, g model.Gender) model.Person {
	return model.Person{ID: id, FirstName: id, Gender: g}
}

func bio(parent, child string, role model.Role) model.ParentChildEdge {
	return model.ParentChildEdge{ParentID: parent, ChildID: child, Role: role, Kind: model.KindBiological}
}

func whangai(parent, child string, role model.Role) model.ParentChildEdge {
	return model.ParentChildEdge{ParentID: parent, ChildID: child, Role: role, Kind: model.KindWhangai}
}

// whanauGraph is the reunion scenario used across tests:
//
//	Mere (F) + Hemi (M) -> Aroha (F), Tama (M)
//	Aroha + Xavier (M)  -> G1 (F)
//	Tama  + Yvonne (F)  -> G2 (M)
//	G2 + Zoe (F)        -> GG2 (F)
func whanauGraph() *MemoryGraph {
	people := []model.Person{
		person("mere", model.GenderFemale),
		person("hemi", model.GenderMale),
		person("aroha", model.GenderFemale),
		person("tama", model.GenderMale),
		person("xavier", model.GenderMale),
		person("yvonne", model.GenderFemale),
		person("g1", model.GenderFemale),
		person("g2", model.GenderMale),
		person("zoe", model.GenderFemale),
		person("gg2", model.GenderFemale),
	}
	edges := []model.ParentChildEdge{
		bio("mere", "aroha", model.RoleMother),
		bio("hemi", "aroha", model.RoleFather),
		bio("mere", "tama", model.RoleMother),
		bio("hemi", "tama", model.RoleFather),
		bio("aroha", "g1", model.RoleMother),
		bio("xavier", "g1", model.RoleFather),
		bio("tama", "g2", model.RoleFather),
		bio("yvonne", "g2", model.RoleMother),
		bio("g2", "gg2", model.RoleFather),
		bio("zoe", "gg2", model.RoleMother),
	}
	return NewMemoryGraph(people, edges)
}

var errBoom = errors.New("boom")

// failingReader fails every ParentsOf call.
type failingReader struct {
	Reader
}

func (failingReader) ParentsOf(context.Context, string) ([]ParentLink, error) {
	return nil, errBoom
}
