/*
 * json.go, part of godock.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

/*Package dockjson serializes godock score snapshots (per-term factors
and the conformation-independent feature vector) as JSON, for exchange
with fitting scripts and other external programs. Field names and
their order are stable: the seven features in their canonical order,
and the external group before the internal one for factors.

Factors streams (one snapshot per candidate pose of a fitting run) can
be compressed; the compressor is picked from the file extension as in
goChem's stf trajectory format.
*/
package dockjson

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/godock/score"
)

//An easily JSON-serializable error type, implementing the godock Error
//interface.
type Error struct {
	deco     []string
	Function string //the function that produced the error
	Message  string
}

func (err *Error) Error() string { return err.Message }

//Decorate adds the dec string to the decoration slice of the error,
//and returns the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newError(function string, err error) *Error {
	return &Error{Function: function, Message: err.Error()}
}

//Inputs is the wire form of score.ConfIndependentInputs. The field
//order is part of the format.
type Inputs struct {
	NumTors             float64 `json:"num_tors"`
	NumRotors           float64 `json:"num_rotors"`
	NumHeavyAtoms       float64 `json:"num_heavy_atoms"`
	NumHydrophobicAtoms float64 `json:"num_hydrophobic_atoms"`
	LigandMaxNumHBonds  float64 `json:"ligand_max_num_h_bonds"`
	NumLigands          float64 `json:"num_ligands"`
	LigandLengthsSum    float64 `json:"ligand_lengths_sum"`
}

//NewInputs wraps a feature vector for serialization.
func NewInputs(in *score.ConfIndependentInputs) *Inputs {
	return &Inputs{in.NumTors, in.NumRotors, in.NumHeavyAtoms,
		in.NumHydrophobicAtoms, in.LigandMaxNumHBonds, in.NumLigands,
		in.LigandLengthsSum}
}

//Inputs returns the deserialized feature vector.
func (j *Inputs) Inputs() *score.ConfIndependentInputs {
	return &score.ConfIndependentInputs{NumTors: j.NumTors,
		NumRotors: j.NumRotors, NumHeavyAtoms: j.NumHeavyAtoms,
		NumHydrophobicAtoms: j.NumHydrophobicAtoms,
		LigandMaxNumHBonds:  j.LigandMaxNumHBonds,
		NumLigands:          j.NumLigands,
		LigandLengthsSum:    j.LigandLengthsSum}
}

//Factors is the wire form of score.Factors: the external group first,
//then the internal one.
type Factors struct {
	E []float64 `json:"e"`
	I []float64 `json:"i"`
}

//WriteInputs encodes in to w as one JSON document.
func WriteInputs(w io.Writer, in *score.ConfIndependentInputs) *Error {
	if err := json.NewEncoder(w).Encode(NewInputs(in)); err != nil {
		return newError("WriteInputs", err)
	}
	return nil
}

//ReadInputs decodes a feature vector from r.
func ReadInputs(r io.Reader) (*score.ConfIndependentInputs, *Error) {
	j := new(Inputs)
	if err := json.NewDecoder(r).Decode(j); err != nil {
		return nil, newError("ReadInputs", err)
	}
	return j.Inputs(), nil
}

//WriteFactors encodes f to w as one JSON document.
func WriteFactors(w io.Writer, f *score.Factors) *Error {
	if err := json.NewEncoder(w).Encode(Factors{f.E, f.I}); err != nil {
		return newError("WriteFactors", err)
	}
	return nil
}

//ReadFactors decodes factors from r.
func ReadFactors(r io.Reader) (*score.Factors, *Error) {
	j := new(Factors)
	if err := json.NewDecoder(r).Decode(j); err != nil {
		return nil, newError("ReadFactors", err)
	}
	return &score.Factors{E: j.E, I: j.I}, nil
}

//Writer streams factors snapshots to a file, one JSON document per
//line, behind a compressor chosen from the file extension: .zst for
//zstd, .gz for gzip, .flate for DEFLATE, anything else uncompressed.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	n         int
}

//NewWriter creates the file and sets up the compressor. The optional
//compressionLevel is used by the gzip and flate compressors; zstd
//always favors compression over speed, as these streams are written
//once and read many times.
func NewWriter(name string, compressionLevel ...int) (*Writer, error) {
	level := flate.DefaultCompression
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	W := new(Writer)
	var err error
	W.f, err = os.Create(name)
	if err != nil {
		return nil, newError("NewWriter", err)
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		W.h, err = zstd.NewWriter(W.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case strings.HasSuffix(name, ".gz"):
		W.h, err = gzip.NewWriterLevel(W.f, level)
	case strings.HasSuffix(name, ".flate"):
		W.h, err = flate.NewWriter(W.f, level)
	default:
		W.h = nopCloser{W.f}
	}
	if err != nil {
		W.f.Close()
		return nil, newError("NewWriter", err)
	}
	W.filename = name
	W.writeable = true
	return W, nil
}

//WNext appends one factors snapshot to the stream.
func (W *Writer) WNext(f *score.Factors) error {
	if !W.writeable {
		return &Error{Function: "WNext", Message: fmt.Sprintf("dockjson: stream %s not open for writing", W.filename)}
	}
	if err := WriteFactors(W.h, f); err != nil {
		return err
	}
	W.n++
	return nil
}

//Len returns the number of snapshots written so far.
func (W *Writer) Len() int { return W.n }

//Close flushes the compressor and closes the file.
func (W *Writer) Close() error {
	if W == nil || !W.writeable {
		return nil
	}
	W.writeable = false
	if err := W.h.Close(); err != nil {
		W.f.Close()
		return newError("Close", err)
	}
	if err := W.f.Close(); err != nil {
		return newError("Close", err)
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

//Reader reads back a factors stream written by Writer, picking the
//decompressor from the file extension.
type Reader struct {
	f        *os.File
	z        io.Closer //nil when the stream is not compressed
	h        *bufio.Reader
	filename string
}

//NewReader opens a factors stream for reading.
func NewReader(name string) (*Reader, error) {
	R := new(Reader)
	var err error
	R.f, err = os.Open(name)
	if err != nil {
		return nil, newError("NewReader", err)
	}
	var in io.Reader = R.f
	switch {
	case strings.HasSuffix(name, ".zst"):
		d, err := zstd.NewReader(R.f)
		if err != nil {
			R.f.Close()
			return nil, newError("NewReader", err)
		}
		in = d
		R.z = closerFunc(func() error { d.Close(); return nil })
	case strings.HasSuffix(name, ".gz"):
		d, err := gzip.NewReader(R.f)
		if err != nil {
			R.f.Close()
			return nil, newError("NewReader", err)
		}
		in = d
		R.z = d
	case strings.HasSuffix(name, ".flate"):
		d := flate.NewReader(R.f)
		in = d
		R.z = d
	}
	R.h = bufio.NewReader(in)
	R.filename = name
	return R, nil
}

//Next returns the next snapshot in the stream, or io.EOF after the
//last one.
func (R *Reader) Next() (*score.Factors, error) {
	line, err := R.h.ReadBytes('\n')
	if len(line) == 0 {
		if err == nil || err == io.EOF {
			return nil, io.EOF
		}
		return nil, newError("Next", err)
	}
	j := new(Factors)
	if err2 := json.Unmarshal(line, j); err2 != nil {
		return nil, newError("Next", err2)
	}
	return &score.Factors{E: j.E, I: j.I}, nil
}

//Close closes the decompressor, if any, and the file.
func (R *Reader) Close() error {
	if R == nil {
		return nil
	}
	if R.z != nil {
		R.z.Close()
	}
	if err := R.f.Close(); err != nil {
		return newError("Close", err)
	}
	return nil
}

type closerFunc func() error

func (c closerFunc) Close() error { return c() }
