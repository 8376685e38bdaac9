package model

import (
	"sort"
)

type Documents struct {
	byTitle map[string]*Document
	byID    map[UUID]*Document
}

func NewDocuments() *Documents {
	return &Documents{
		byTitle: map[string]*Document{},
		byID:    map[UUID]*Document{},
	}
}

func (ds *Documents) GetOrCreate(title string) *Document {
	return ds.GetOrCreateEx(title, nil)
}

func (ds *Documents) GetOrCreateEx(title string, id *UUID) *Document {
	if len(title) == 0 {
		panic("empty title not supported")
	}

	result, ok := ds.byTitle[title]

	if !ok {
		result = NewDocument(title, id)
		ds.byTitle[title] = result
		ds.byID[result.ID] = result
	}

	return result
}

func (ds *Documents) GetByID(id UUID) *Document {
	return ds.byID[id]
}

func (ds *Documents) List() []*Document {
	result := make([]*Document, 0, len(ds.byTitle))

	for _, v := range ds.byTitle {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Title < result[j].Title
	})

	return result
}
