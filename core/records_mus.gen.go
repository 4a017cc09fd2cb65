// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice3bXMVBe1U6rDdHPC7JVfKQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicezPqhGzMiuRYkΔKIkrXChqwΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var SeverityMUS = severityMUS{}

type severityMUS struct{}

func (s severityMUS) Marshal(v Severity, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s severityMUS) Unmarshal(bs []byte) (v Severity, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Severity(tmp)
	return
}

func (s severityMUS) Size(v Severity) (size int) {
	return varint.Int.Size(int(v))
}

func (s severityMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var RuleMUS = ruleMUS{}

type ruleMUS struct{}

func (s ruleMUS) Marshal(v Rule, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.JurisdictionCode, bs[n:])
	n += ord.String.Marshal(v.TopicID, bs[n:])
	n += SeverityMUS.Marshal(v.Severity, bs[n:])
	n += ord.String.Marshal(v.Citation, bs[n:])
	n += slicezPqhGzMiuRYkΔKIkrXChqwΞΞ.Marshal(v.FlaggedPhrases, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.String.Marshal(v.Suggestion, bs[n:])
	n += ord.String.Marshal(v.SourceURL, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.EffectiveDate, bs[n:])
	n += slice3bXMVBe1U6rDdHPC7JVfKQΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s ruleMUS) Unmarshal(bs []byte) (v Rule, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.JurisdictionCode, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TopicID, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Severity, n1, err = SeverityMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Citation, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.FlaggedPhrases, n1, err = slicezPqhGzMiuRYkΔKIkrXChqwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Suggestion, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.EffectiveDate, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slice3bXMVBe1U6rDdHPC7JVfKQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s ruleMUS) Size(v Rule) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.JurisdictionCode)
	size += ord.String.Size(v.TopicID)
	size += SeverityMUS.Size(v.Severity)
	size += ord.String.Size(v.Citation)
	size += slicezPqhGzMiuRYkΔKIkrXChqwΞΞ.Size(v.FlaggedPhrases)
	size += ord.String.Size(v.Summary)
	size += ord.String.Size(v.Suggestion)
	size += ord.String.Size(v.SourceURL)
	size += raw.TimeUnixMicro.Size(v.EffectiveDate)
	size += slice3bXMVBe1U6rDdHPC7JVfKQΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s ruleMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SeverityMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicezPqhGzMiuRYkΔKIkrXChqwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice3bXMVBe1U6rDdHPC7JVfKQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var JurisdictionMUS = jurisdictionMUS{}

type jurisdictionMUS struct{}

func (s jurisdictionMUS) Marshal(v Jurisdiction, bs []byte) (n int) {
	n = ord.String.Marshal(v.Code, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.RuleSetVersion, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s jurisdictionMUS) Unmarshal(bs []byte) (v Jurisdiction, n int, err error) {
	v.Code, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RuleSetVersion, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s jurisdictionMUS) Size(v Jurisdiction) (size int) {
	size = ord.String.Size(v.Code)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.RuleSetVersion)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s jurisdictionMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
