package numfile

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/frac"
)

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Some constants for batch size defaults
const (
	twoKb     = 2048
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// Progress reports the state of a running file load. Progress values are
// broadcast to all subscribers of a Loading.
type Progress struct {
	Samples int   // number of samples decoded so far
	Bytes   int64 // number of input bytes consumed
}

// Loading represents an OS file which is being loaded as a set of numbers.
type Loading struct {
	path string                 // file name
	info os.FileInfo            // result from Stat(path)
	file *os.File               // file handle
	cast *caster.Caster         // broadcaster for async progress reporting
	done chan struct{}          // closed when the load is finished
	set  ordered.Set[frac.Frac] // load result
	err  error                  // remember first decoding or I/O error
}

// Load reads a file, which must be a number file, and loads it as an
// ordered set of fractions. Duplicate samples collapse into one element.
//
// A malformed sample stops the load and reports its file position; the set
// built up to the malformed sample is returned alongside the error.
func Load(name string) (ordered.Set[frac.Frac], error) {
	ld, err := LoadAsync(name, 0)
	if err != nil {
		return ordered.Set[frac.Frac]{}, err
	}
	return ld.Wait()
}

// LoadAsync reads a file like Load, but decodes it in the background.
// Clients may subscribe to the returned Loading for progress reports and
// collect the result with Wait. Opening of the file is always done
// synchronously.
//
// batch is the number of samples between two progress broadcasts. It may be
// 0, letting LoadAsync pick a sensible default from the file size.
func LoadAsync(name string, batch int) (*Loading, error) {
	ld, err := openFile(name)
	if err != nil {
		return nil, err
	}
	if batch <= 0 {
		batch = batchSize(ld.info.Size())
	}
	go ld.run(batch)
	return ld, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*Loading, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotLoadable, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	ld := &Loading{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast progress while samples load
		done: make(chan struct{}),
	}
	return ld, nil
}

// batchSize picks the number of samples between two progress broadcasts,
// graduated by file size.
func batchSize(size int64) int {
	if size < twoKb {
		return 16
	} else if size < tenKb {
		return 64
	} else if size < hundredKb {
		return 256
	} else if size < oneMb {
		return 1024
	}
	return 4096
}

// Subscribe registers a listener for Progress messages. Every message on
// the returned channel is a Progress value. The channel closes when the
// load is finished. ok is false when the load already finished, leaving ch
// unusable.
//
// Listeners which fall behind may miss intermediate Progress messages.
func (ld *Loading) Subscribe(ctx context.Context) (ch chan interface{}, ok bool) {
	return ld.cast.Sub(ctx, 1)
}

// Unsubscribe cancels a subscription. Subscriptions end automatically when
// the load finishes.
func (ld *Loading) Unsubscribe(ch chan interface{}) {
	ld.cast.Unsub(ch)
}

// Wait blocks until the load is finished and returns the loaded set.
//
// On a malformed sample the returned error carries the file position, and
// the set holds all samples up to the malformed one.
func (ld *Loading) Wait() (ordered.Set[frac.Frac], error) {
	<-ld.done
	return ld.set, ld.err
}

// --- Load goroutine --------------------------------------------------------

// run decodes the file and builds the set, publishing Progress after every
// batch of samples.
func (ld *Loading) run(batch int) {
	defer close(ld.done)
	defer ld.cast.Close()
	defer ld.file.Close()

	builder, err := ordered.NewBuilderOf(frac.Compare)
	if err != nil {
		panic("cannot build a set over the fraction order")
	}
	samples := 0
	var consumed int64
	lineno := 0
	scanner := bufio.NewScanner(ld.file)
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		consumed += int64(len(line)) + 1 // counts the newline; the final line may come up one short
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i] // rest of line is a comment
		}
		for _, field := range strings.Fields(line) {
			f, err := frac.Parse(field)
			if err != nil {
				ld.err = fmt.Errorf("%s:%d: %w", ld.path, lineno, err)
				ld.set = builder.Set()
				tracer().Errorf("number file: %s", ld.err.Error())
				return
			}
			if err := builder.Add(f); err != nil {
				ld.err = err
				ld.set = builder.Set()
				return
			}
			samples++
			if samples%batch == 0 {
				ld.cast.TryPub(Progress{Samples: samples, Bytes: consumed})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		ld.err = fmt.Errorf("error reading %s: %w", ld.path, err)
	}
	ld.set = builder.Set()
	ld.cast.TryPub(Progress{Samples: samples, Bytes: consumed})
	tracer().Infof("number file %s: loaded %d samples", ld.path, samples)
}
