// Package loader constructs information systems from external tabular
// data. Values are taken verbatim as categorical strings; discretizing
// numeric columns is the caller's job before the data gets here.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/johnHostetter/rough-theory/pkg/api"
	"github.com/johnHostetter/rough-theory/pkg/api/roughconf"
)

// Loader builds one immutable information system.
type Loader interface {
	Load() (*api.InformationSystem, error)
}

// CSVLoader reads a table whose first row names the attributes. Empty
// cells are undefined values, handled per the missing-value policy.
type CSVLoader struct {
	Path string
	// Decision optionally names the column holding the decision attribute.
	Decision string
	// IDColumn optionally names a column providing object ids; without
	// it objects are numbered by row, starting at 1.
	IDColumn string
	Policy   roughconf.MissingValuePolicy
}

func (l CSVLoader) Load() (*api.InformationSystem, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %v", l.Path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %v", l.Path, err)
	}
	if len(records) == 0 {
		return nil, &api.EmptyDatasetError{}
	}

	header := records[0]
	idIndex := -1
	var attributes []api.Attribute
	for i, name := range header {
		if name == l.IDColumn && l.IDColumn != "" {
			idIndex = i
			continue
		}
		attributes = append(attributes, api.Attribute{Name: name})
	}
	if l.IDColumn != "" && idIndex == -1 {
		return nil, fmt.Errorf("id column %s is not part of the header %v", l.IDColumn, header)
	}

	var objects []api.Object
	for row, record := range records[1:] {
		object := api.Object{
			ID:     strconv.Itoa(row + 1),
			Values: map[string]string{},
		}
		for i, value := range record {
			if i == idIndex {
				object.ID = value
				continue
			}
			if value == "" {
				continue
			}
			object.Values[header[i]] = value
		}
		objects = append(objects, object)
	}

	logrus.Infof("Loaded %d objects with %d attributes from %s.", len(objects), len(attributes), l.Path)
	return api.NewInformationSystem(objects, attributes, l.Decision, l.Policy)
}

// DatasetLoader reads the YAML dataset document format.
type DatasetLoader struct {
	Path string
}

func (l DatasetLoader) Load() (*api.InformationSystem, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %v", l.Path, err)
	}
	dataset := &roughconf.Dataset{}
	if err := yaml.Unmarshal(data, dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %v", l.Path, err)
	}
	return FromDataset(dataset)
}

// FromDataset builds a system from an in-memory dataset document.
func FromDataset(dataset *roughconf.Dataset) (*api.InformationSystem, error) {
	attributes := make([]api.Attribute, 0, len(dataset.Attributes))
	for _, name := range dataset.Attributes {
		attributes = append(attributes, api.Attribute{Name: name})
	}

	objects := make([]api.Object, 0, len(dataset.Rows))
	for row, r := range dataset.Rows {
		id := r.ID
		if id == "" {
			id = strconv.Itoa(row + 1)
		}
		values := make(map[string]string, len(r.Values))
		for name, value := range r.Values {
			values[name] = value
		}
		objects = append(objects, api.Object{ID: id, Values: values})
	}

	return api.NewInformationSystem(objects, attributes, dataset.Decision, dataset.MissingValues)
}
