package records

import (
	"errors"
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/mpapenbr/paceviz/pkg/model"
)

var ErrNoRecordsFound = errors.New("no records found")

// ImportJSON extracts a distance->time object from a json document.
// jsonPath selects the object, e.g. $.myAthletics for a browser storage export.
// An empty path uses the document root.
func ImportJSON(jsonData, jsonPath string) (model.UserRecordSet, error) {
	obj, err := oj.ParseString(jsonData)
	if err != nil {
		return nil, err
	}
	if jsonPath == "" {
		jsonPath = "$"
	}
	path, err := jp.ParseString(jsonPath)
	if err != nil {
		return nil, err
	}
	res := path.Get(obj)
	if len(res) == 0 {
		return nil, fmt.Errorf("%w at %s", ErrNoRecordsFound, jsonPath)
	}
	// browser storage exports keep the records as an encoded json string
	if encoded, ok := res[0].(string); ok {
		return ImportJSON(encoded, "")
	}
	ret := model.UserRecordSet{}
	if err := oj.Unmarshal([]byte(oj.JSON(res[0])), &ret); err != nil {
		return nil, err
	}
	return ret, nil
}
