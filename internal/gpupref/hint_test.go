package gpupref_test

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"

	"github.com/san-kum/gpuhint/internal/gpupref"
)

type fakeProvider struct {
	status   gpupref.Status
	accept   bool
	resolves int
	calls    []gpupref.Preference
}

func (f *fakeProvider) Resolve() gpupref.Capability {
	f.resolves++
	c := gpupref.Capability{
		Status: f.status,
		Module: "gdi32.dll",
		Symbol: "SetProcessDefaultGpuPreference",
	}
	switch f.status {
	case gpupref.Available:
		c.Set = func(p gpupref.Preference) bool {
			f.calls = append(f.calls, p)
			return f.accept
		}
	case gpupref.ModuleMissing, gpupref.SymbolMissing:
		c.Err = errors.New("not found")
	}
	return c
}

func lines(buf *gbytes.Buffer) []string {
	out := strings.TrimRight(string(buf.Contents()), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

var _ = Describe("Apply", func() {
	var buf *gbytes.Buffer

	BeforeEach(func() {
		buf = gbytes.NewBuffer()
	})

	It("passes the high-performance wire value", func() {
		Expect(int32(gpupref.HighPerformance)).To(Equal(int32(2)))
	})

	Context("when the module is missing", func() {
		It("reports once and makes no call", func() {
			p := &fakeProvider{status: gpupref.ModuleMissing}

			Expect(gpupref.Attempt(p, buf)).To(Equal(gpupref.Abandoned))
			Expect(lines(buf)).To(HaveLen(1))
			Expect(buf).To(gbytes.Say(`^\[GPU\] gdi32\.dll not available; skipping GPU preference hint\.`))
			Expect(p.calls).To(BeEmpty())
		})
	})

	Context("when the symbol is missing", func() {
		It("reports once and makes no call", func() {
			p := &fakeProvider{status: gpupref.SymbolMissing}

			Expect(gpupref.Attempt(p, buf)).To(Equal(gpupref.Abandoned))
			Expect(lines(buf)).To(HaveLen(1))
			Expect(buf).To(gbytes.Say(`^\[GPU\] SetProcessDefaultGpuPreference not exported; skipping hint\.`))
			Expect(p.calls).To(BeEmpty())
		})
	})

	Context("when the call reports failure", func() {
		It("reports once and still returns", func() {
			p := &fakeProvider{status: gpupref.Available, accept: false}

			Expect(gpupref.Attempt(p, buf)).To(Equal(gpupref.Invoked))
			Expect(lines(buf)).To(HaveLen(1))
			Expect(buf).To(gbytes.Say(`^\[GPU\] Failed to hint high-performance GPU preference \(continuing anyway\)\.`))
			Expect(p.calls).To(Equal([]gpupref.Preference{gpupref.HighPerformance}))
		})
	})

	Context("when everything resolves and the call succeeds", func() {
		It("stays silent and calls once", func() {
			p := &fakeProvider{status: gpupref.Available, accept: true}

			Expect(gpupref.Attempt(p, buf)).To(Equal(gpupref.Invoked))
			Expect(buf.Contents()).To(BeEmpty())
			Expect(p.calls).To(Equal([]gpupref.Preference{gpupref.HighPerformance}))
		})
	})

	Context("when the provider is not applicable", func() {
		It("writes nothing", func() {
			p := &fakeProvider{status: gpupref.NotApplicable}

			Expect(gpupref.Attempt(p, buf)).To(Equal(gpupref.Unattempted))
			Expect(buf.Contents()).To(BeEmpty())
			Expect(p.calls).To(BeEmpty())
		})
	})

	It("treats an available capability without a function as a missing symbol", func() {
		p := providerFunc(func() gpupref.Capability {
			return gpupref.Capability{Status: gpupref.Available, Symbol: "SetProcessDefaultGpuPreference"}
		})

		Expect(gpupref.Attempt(p, buf)).To(Equal(gpupref.Abandoned))
		Expect(buf).To(gbytes.Say(`not exported`))
	})

	It("resolves afresh on every call", func() {
		p := &fakeProvider{status: gpupref.Available, accept: true}

		gpupref.Apply(p, buf)
		gpupref.Apply(p, buf)
		gpupref.Apply(p, buf)

		Expect(p.resolves).To(Equal(3))
		Expect(p.calls).To(HaveLen(3))
		Expect(buf.Contents()).To(BeEmpty())
	})

	It("repeats the same diagnostic for repeated failures", func() {
		p := &fakeProvider{status: gpupref.SymbolMissing}

		gpupref.Apply(p, buf)
		gpupref.Apply(p, buf)

		Expect(lines(buf)).To(HaveLen(2))
		Expect(lines(buf)[0]).To(Equal(lines(buf)[1]))
	})

	It("tolerates a nil writer and a nil provider", func() {
		Expect(func() {
			gpupref.Apply(&fakeProvider{status: gpupref.ModuleMissing}, nil)
			gpupref.Apply(nil, buf)
		}).NotTo(Panic())
		Expect(buf.Contents()).To(BeEmpty())
	})
})

var _ = Describe("Capability.State", func() {
	DescribeTable("maps a resolution to the furthest state reached",
		func(c gpupref.Capability, want gpupref.State) {
			Expect(c.State()).To(Equal(want))
		},
		Entry("module missing", gpupref.Capability{Status: gpupref.ModuleMissing}, gpupref.Unattempted),
		Entry("symbol missing", gpupref.Capability{Status: gpupref.SymbolMissing}, gpupref.ModuleResolved),
		Entry("available", gpupref.Capability{
			Status: gpupref.Available,
			Set:    func(gpupref.Preference) bool { return true },
		}, gpupref.SymbolResolved),
		Entry("not applicable", gpupref.Capability{Status: gpupref.NotApplicable}, gpupref.Unattempted),
	)
})

type providerFunc func() gpupref.Capability

func (f providerFunc) Resolve() gpupref.Capability { return f() }
