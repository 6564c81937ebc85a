// Copyright (c) 2026 The symspell-go Authors. All rights reserved.
// Use of this source code is governed by a MIT license that can be found in the
// LICENSE file.

package symspell

import (
	"compress/gzip"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/tidwall/gjson"
)

// Save persists a FrozenIndex to path as gzip-compressed JSON, grounded
// on the teacher's own Save/Load: a single JSON envelope (options, term
// table, deletion-index payload and spans) gzipped to disk. This is the
// "any equivalent" on-disk layout spec.md §6 allows in place of a
// compiled-in constant table.
func Save(f *FrozenIndex, path string) error {
	envelope := map[string]interface{}{
		"options": map[string]interface{}{
			"max_distance":  f.cfg.MaxDistance,
			"lowercase":     f.cfg.Lowercase,
			"prefix_length": f.cfg.PrefixLength,
		},
		"terms":   f.terms,
		"payload": f.payload,
		"spans":   f.spans,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	if _, err := gw.Write(data); err != nil {
		gw.Close()
		return err
	}
	return gw.Close()
}

// Load reads a FrozenIndex previously written by Save. It walks the
// envelope section by section with github.com/tidwall/gjson the way the
// teacher's own Load does, rather than a single json.Unmarshal into a
// Go struct, so that an envelope with extra or reordered fields — e.g.
// one emitted by a newer version of this format — still loads cleanly.
func Load(path string) (*FrozenIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gr, err := gzip.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer gr.Close()

	data, err := ioutil.ReadAll(gr)
	if err != nil {
		return nil, err
	}

	gj := gjson.ParseBytes(data)

	cfg := Config{
		MaxDistance: uint32(gj.Get("options.max_distance").Uint()),
		Lowercase:   gj.Get("options.lowercase").Bool(),
	}
	if pl := gj.Get("options.prefix_length"); pl.Exists() && pl.Type != gjson.Null {
		n := uint32(pl.Uint())
		cfg.PrefixLength = &n
	}

	var terms []Term
	if err := json.Unmarshal([]byte(gj.Get("terms").Raw), &terms); err != nil {
		return nil, err
	}

	var payload []TermId
	if err := json.Unmarshal([]byte(gj.Get("payload").Raw), &payload); err != nil {
		return nil, err
	}

	spans := make(map[string]span)
	if err := json.Unmarshal([]byte(gj.Get("spans").Raw), &spans); err != nil {
		return nil, err
	}

	return &FrozenIndex{
		cfg:     cfg,
		terms:   terms,
		spans:   spans,
		payload: payload,
	}, nil
}
