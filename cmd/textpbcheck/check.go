// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/reflect/protoregistry"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
	"golang.org/x/sync/errgroup"

	"github.com/protocolbuffers/textpb/encoding/textpb"
	"github.com/protocolbuffers/textpb/protobind"
)

type checkOptions struct {
	descriptorSet string
	message       string
	json          bool
	print         bool
	verbose       bool
	jobs          int
}

// report is the result of checking one input.
type report struct {
	File  string `json:"file"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Kind  string `json:"kind,omitempty"`
}

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	kindColor = color.New(color.FgYellow)
)

var errorKinds = []struct {
	name string
	err  error
}{
	{"structural", textpb.ErrStructural},
	{"malformed_text", textpb.ErrMalformedText},
	{"unrecognized_enum_value", textpb.ErrUnrecognizedEnumValue},
	{"unknown_field", textpb.ErrUnknownField},
	{"missing_field_names", textpb.ErrMissingFieldNames},
	{"truncated_input", textpb.ErrTruncatedInput},
	{"unimplemented", textpb.ErrUnimplemented},
	{"recursion_limit", textpb.ErrRecursionLimit},
}

func kindOf(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "other"
}

// schema is the message type selected from a descriptor set, together with
// every extension the set declares.
type schema struct {
	desc  protoreflect.MessageDescriptor
	types *protoregistry.Types
}

func loadSchema(path string, name string) (*schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor set: %w", err)
	}
	fds := new(descriptorpb.FileDescriptorSet)
	if err := proto.Unmarshal(b, fds); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor set: %w", err)
	}
	files, err := protodesc.NewFiles(fds)
	if err != nil {
		return nil, fmt.Errorf("invalid descriptor set: %w", err)
	}

	types := new(protoregistry.Types)
	files.RangeFiles(func(fd protoreflect.FileDescriptor) bool {
		err = registerExtensions(types, fd.Extensions(), fd.Messages())
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	d, err := files.FindDescriptorByName(protoreflect.FullName(name))
	if err != nil {
		return nil, fmt.Errorf("message %s: %w", name, err)
	}
	md, ok := d.(protoreflect.MessageDescriptor)
	if !ok {
		return nil, fmt.Errorf("%s is not a message", name)
	}
	logger.Debug("loaded descriptor set",
		zap.String("path", path),
		zap.Int("files", files.NumFiles()),
		zap.Int("extensions", types.NumExtensions()))
	return &schema{desc: md, types: types}, nil
}

func registerExtensions(types *protoregistry.Types, xds protoreflect.ExtensionDescriptors, mds protoreflect.MessageDescriptors) error {
	for i := 0; i < xds.Len(); i++ {
		if err := types.RegisterExtension(dynamicpb.NewExtensionType(xds.Get(i))); err != nil {
			return err
		}
	}
	for i := 0; i < mds.Len(); i++ {
		md := mds.Get(i)
		if err := registerExtensions(types, md.Extensions(), md.Messages()); err != nil {
			return err
		}
	}
	return nil
}

// expandInputs resolves glob patterns in args. A pattern that matches
// nothing is kept as is so that it is reported as unreadable.
func expandInputs(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"-"}, nil
	}
	var files []string
	for _, arg := range args {
		if arg == "-" {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		files = append(files, matches...)
	}
	return files, nil
}

// check decodes every input named by args, or stdin if there are none, and
// writes a report for each in argument order. It returns the number of
// inputs that failed.
func check(o checkOptions, args []string, stdin io.Reader, w io.Writer) (int, error) {
	s, err := loadSchema(o.descriptorSet, o.message)
	if err != nil {
		return 0, err
	}
	files, err := expandInputs(args)
	if err != nil {
		return 0, err
	}

	var stdinData []byte
	var stdinErr error
	for _, name := range files {
		if name == "-" {
			stdinData, stdinErr = io.ReadAll(stdin)
			break
		}
	}

	reports := make([]report, len(files))
	msgs := make([]*dynamicpb.Message, len(files))
	jobs := o.jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, name := range files {
		g.Go(func() error {
			var b []byte
			var err error
			if name == "-" {
				b, err = stdinData, stdinErr
			} else {
				b, err = os.ReadFile(name)
			}
			msgs[i] = dynamicpb.NewMessage(s.desc)
			reports[i] = s.decode(name, b, err, msgs[i])
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, rep := range reports {
		if !rep.OK {
			failed++
		}
		if err := writeReport(w, o.json, rep); err != nil {
			return failed, err
		}
		if rep.OK && o.print {
			out := prototext.MarshalOptions{Multiline: true, Indent: "  "}.Format(msgs[i])
			if _, err := fmt.Fprintln(w, out); err != nil {
				return failed, err
			}
		}
	}
	return failed, nil
}

// decode reads b, the contents of the named input, into m. readErr is the
// error from reading the input, if any.
func (s *schema) decode(name string, b []byte, readErr error, m proto.Message) report {
	rep := report{File: name}
	err := readErr
	if err == nil {
		start := time.Now()
		err = protobind.UnmarshalOptions{Resolver: s.types}.Unmarshal(b, m)
		logger.Debug("decoded input",
			zap.String("file", name),
			zap.Int("bytes", len(b)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
	}
	if err != nil {
		rep.Error = err.Error()
		rep.Kind = kindOf(err)
		return rep
	}
	rep.OK = true
	return rep
}

func writeReport(w io.Writer, asJSON bool, rep report) error {
	if asJSON {
		return json.NewEncoder(w).Encode(rep)
	}
	if rep.OK {
		_, err := fmt.Fprintf(w, "%s %s\n", okColor.Sprint("ok"), rep.File)
		return err
	}
	_, err := fmt.Fprintf(w, "%s %s %s %s\n", failColor.Sprint("FAIL"), rep.File, kindColor.Sprintf("[%s]", rep.Kind), rep.Error)
	return err
}
