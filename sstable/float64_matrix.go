package sstable

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/golang/glog"
	"gonum.org/v1/gonum/mat"
)

// internal Float64 matrix representation, used for the posterior
// topic-word (phi) and doc-topic (theta) distribution estimates
type Float64Matrix struct {
	nrow uint32
	ncol uint32
	data []float64
}

// NewFloat64Matrix creates a new Float64Matrix with r rows and c columns.
// the data layout is row major, same as Uint32Matrix.
func NewFloat64Matrix(r, c uint32) *Float64Matrix {
	if r*c <= 0 {
		panic(ErrBadShape)
	}
	return &Float64Matrix{
		nrow: r,
		ncol: c,
		data: make([]float64, r*c),
	}
}

// get the shape of the matrix
func (m *Float64Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Float64Matrix) Get(r, c uint32) float64 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol+c]
}

// set val to the [r, c]-th element of the matrix
func (m *Float64Matrix) Set(r, c uint32, val float64) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] = val
}

// get a copy of the r-th row of the matrix
func (m *Float64Matrix) GetRow(r uint32) []float64 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}

	row := make([]float64, m.ncol)
	copy(row, m.data[r*m.ncol:(r+1)*m.ncol])
	return row
}

// get a copy of the c-th column of the matrix
func (m *Float64Matrix) GetCol(c uint32) []float64 {
	if c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}

	column := make([]float64, m.nrow)
	for r := uint32(0); r < m.nrow; r += 1 {
		column[r] = m.data[r*m.ncol+c]
	}
	return column
}

// Dense copies the matrix into a gonum dense matrix for
// downstream aggregation and classifier feature use
func (m *Float64Matrix) Dense() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(int(m.nrow), int(m.ncol), data)
}

// serialize nonzero entries to file, one "row,col,val" line
// per entry after a "nrow,ncol" header line
func (m *Float64Matrix) Serialize(fn string) error {
	out, err := os.OpenFile(fn, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "%d,%d\n", m.nrow, m.ncol)

	for ridx := uint32(0); ridx < m.nrow; ridx += 1 {
		for cidx := uint32(0); cidx < m.ncol; cidx += 1 {
			val := m.data[ridx*m.ncol+cidx]
			if val > 0 { // only write out nonzero value
				fmt.Fprintf(w, "%d,%d,%e\n", ridx, cidx, val)
			}
		}
	}
	return w.Flush()
}

// deserialize data from file into the receiver, replacing its
// shape and contents with the serialized ones
func (m *Float64Matrix) Deserialize(fn string) error {
	file, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer file.Close()

	var lineIdx int

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		txt := scanner.Text()
		if lineIdx == 0 {
			shape := strings.Split(txt, ",")
			if len(shape) != 2 {
				return ErrCorruptedTable
			}
			row, err := strconv.ParseUint(shape[0], 10, 32)
			if err != nil {
				return err
			}
			col, err := strconv.ParseUint(shape[1], 10, 32)
			if err != nil {
				return err
			}
			m.nrow = uint32(row)
			m.ncol = uint32(col)
			m.data = make([]float64, row*col)
			lineIdx += 1
			continue
		}

		value := strings.Split(txt, ",")
		if len(value) != 3 {
			log.Warningf("data corrupted, row %d, data %s", lineIdx, txt)
			lineIdx += 1
			continue
		}
		ridx, err := strconv.ParseUint(value[0], 10, 32)
		if err != nil {
			return err
		}
		cidx, err := strconv.ParseUint(value[1], 10, 32)
		if err != nil {
			return err
		}
		val, err := strconv.ParseFloat(value[2], 64)
		if err != nil {
			return err
		}
		m.Set(uint32(ridx), uint32(cidx), val)

		lineIdx += 1
	}

	return scanner.Err()
}
