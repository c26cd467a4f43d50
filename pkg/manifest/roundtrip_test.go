// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package manifest_test

import (
	"embed"
	"fmt"
	"strings"

	"github.com/gardener/siteconf/pkg/manifest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

//go:embed examples/*
var examples embed.FS

var _ = Describe("Round-trip", func() {
	DescribeTable("serializing a parsed document yields an equivalent document",
		func(example string) {
			content, err := examples.ReadFile(fmt.Sprintf("examples/%s.yaml", example))
			Expect(err).ToNot(HaveOccurred())

			parsed, err := manifest.Parse(content)
			Expect(err).ToNot(HaveOccurred())
			serialized, err := manifest.Serialize(parsed)
			Expect(err).ToNot(HaveOccurred())

			reparsed, err := manifest.Parse([]byte(serialized))
			Expect(err).ToNot(HaveOccurred())
			Expect(reparsed).To(Equal(parsed))

			// serialization is stable
			reserialized, err := manifest.Serialize(reparsed)
			Expect(err).ToNot(HaveOccurred())
			Expect(reserialized).To(Equal(serialized))
		},
		Entry("covering the full schema", "full"),
		Entry("covering shorthand forms", "minimal"),
	)

	It("preserves values and the ordering of ordered fields", func() {
		content, err := examples.ReadFile("examples/full.yaml")
		Expect(err).ToNot(HaveOccurred())
		parsed, err := manifest.Parse(content)
		Expect(err).ToNot(HaveOccurred())
		serialized, err := manifest.Serialize(parsed)
		Expect(err).ToNot(HaveOccurred())

		Expect(serialized).To(ContainSubstring("site_name: Maggma Documentation"))
		Expect(strings.Index(serialized, "Home:")).To(BeNumerically("<", strings.Index(serialized, "Getting Started:")))
		Expect(strings.Index(serialized, "Core Concepts:")).To(BeNumerically("<", strings.Index(serialized, "Advanced:")))
		Expect(strings.Index(serialized, "- search")).To(BeNumerically("<", strings.Index(serialized, "- mkdocstrings")))
		Expect(strings.Index(serialized, "- admonition")).To(BeNumerically("<", strings.Index(serialized, "- footnotes")))
	})

	It("re-parsing yields the site name exactly, with no transformation applied", func() {
		parsed, err := manifest.Parse([]byte(`site_name: "X"`))
		Expect(err).ToNot(HaveOccurred())
		Expect(parsed.SiteName).To(Equal("X"))
		serialized, err := manifest.Serialize(parsed)
		Expect(err).ToNot(HaveOccurred())
		reparsed, err := manifest.Parse([]byte(serialized))
		Expect(err).ToNot(HaveOccurred())
		Expect(reparsed.SiteName).To(Equal("X"))
	})

	It("keeps the scalar theme shorthand", func() {
		content, err := examples.ReadFile("examples/minimal.yaml")
		Expect(err).ToNot(HaveOccurred())
		parsed, err := manifest.Parse(content)
		Expect(err).ToNot(HaveOccurred())
		serialized, err := manifest.Serialize(parsed)
		Expect(err).ToNot(HaveOccurred())
		Expect(serialized).To(ContainSubstring("theme: readthedocs"))
	})
})
