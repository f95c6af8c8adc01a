package test_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/loopcontext/fehtpl"
	"github.com/loopcontext/fehtpl/test"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func blankFields(o *fehtpl.Object) []string {
	var fields []string
	o.Each(func(_ string, value any) {
		entry, ok := value.(*fehtpl.Object)
		Expect(ok).To(BeTrue())
		entry.Each(func(field string, v any) {
			Expect(v).To(Equal(""))
			fields = append(fields, field)
		})
	})
	return fields
}

var _ = Describe("Template builder", func() {
	var dir string
	var builder *fehtpl.Builder

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "fehtpl-suite-*")
		Expect(err).NotTo(HaveOccurred())
		Expect(test.WriteDataDir(filepath.Join(dir, "data"), test.SampleData)).To(Succeed())
		builder = fehtpl.NewBuilder(fehtpl.Config{DataDir: filepath.Join(dir, "data")})
	})

	AfterEach(func() {
		Expect(os.RemoveAll(dir)).To(Succeed())
	})

	Context("building a blank template", func() {
		It("contains every source entry exactly once, in section order", func() {
			template, err := builder.Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(template.Keys()).To(Equal(test.SampleKeys))
		})

		It("leaves every translatable field blank", func() {
			template, err := builder.Build()
			Expect(err).NotTo(HaveOccurred())
			fields := blankFields(template)
			Expect(fields).To(ContainElement(fehtpl.FieldName))
			Expect(fields).To(ContainElement(fehtpl.FieldEffect))
			Expect(fehtpl.Untranslated(template)).To(HaveLen(len(fields)))
		})

		It("sorts every section and orders passive categories by their key", func() {
			template, err := fehtpl.NewBuilder(fehtpl.Config{
				DataDir:    filepath.Join(dir, "data"),
				Structured: true,
			}).Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(fehtpl.IsSorted(template.Object("HEROES"))).To(BeTrue())
			Expect(template.Keys()[4:]).To(Equal([]string{"PASSIVE_A", "PASSIVE_B", "PASSIVE_C"}))
			template.Each(func(key string, value any) {
				Expect(fehtpl.IsSorted(value.(*fehtpl.Object))).To(BeTrue(), key)
			})
		})

		It("builds the same template every time", func() {
			first, err := builder.Build()
			Expect(err).NotTo(HaveOccurred())
			second, err := builder.Build()
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Equal(first)).To(BeTrue())
		})

		It("fails without output when a source file is missing", func() {
			Expect(os.Remove(filepath.Join(dir, "data", fehtpl.AssistsFile))).To(Succeed())
			template, err := builder.Build()
			Expect(template).To(BeNil())
			var missing *fehtpl.MissingFileError
			Expect(errors.As(err, &missing)).To(BeTrue())
			Expect(missing.Path).To(HaveSuffix(fehtpl.AssistsFile))
		})
	})

	Context("sorting keys", func() {
		It("is idempotent and leaves the input alone", func() {
			in, err := fehtpl.Unmarshal([]byte(`{"b": {"y": "", "x": {"d": "", "c": ""}}, "a": ""}`))
			Expect(err).NotTo(HaveOccurred())
			before := in.Clone()

			once := fehtpl.SortKeys(in)
			Expect(fehtpl.SortKeys(once).Equal(once)).To(BeTrue())
			Expect(in.Equal(before)).To(BeTrue())
			Expect(once.Keys()).To(Equal([]string{"a", "b"}))
		})
	})

	Context("merging into a translated file", func() {
		var fresh *fehtpl.Object
		var old *fehtpl.Object

		BeforeEach(func() {
			var err error
			fresh, err = builder.Build()
			Expect(err).NotTo(HaveOccurred())
			old, err = fehtpl.Unmarshal([]byte(`{"Fury 3": {"name": "Furie 3", "effect": "Effet"}}`))
			Expect(err).NotTo(HaveOccurred())
		})

		It("keeps the translated entry as a whole", func() {
			merged := fehtpl.Merge(fresh, old)
			Expect(merged.Object("Fury 3").Equal(fehtpl.SortKeys(old.Object("Fury 3")))).To(BeTrue())
		})

		It("keeps new entries blank", func() {
			merged := fehtpl.Merge(fresh, old)
			Expect(merged.Keys()).To(Equal(fresh.Keys()))
			merged.Each(func(key string, value any) {
				if key == "Fury 3" {
					return
				}
				Expect(value.(*fehtpl.Object).Equal(fresh.Object(key))).To(BeTrue(), key)
			})
		})

		It("writes the merged file back in one piece", func() {
			path := filepath.Join(dir, "fr.json")
			Expect(fehtpl.Save(path, fehtpl.Merge(fresh, old), fehtpl.SaveOptions{Atomic: true})).To(Succeed())

			loaded, err := fehtpl.LoadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(fehtpl.Untranslated(loaded)).NotTo(ContainElement("Fury 3.name"))
			Expect(fehtpl.Untranslated(loaded)).To(ContainElement("Alm.name"))
		})
	})
})
