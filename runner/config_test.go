package runner_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cohsim/runner"
)

var _ = Describe("Config", func() {
	Describe("Defaults", func() {
		It("should carry the contract values", func() {
			config := runner.DefaultConfig()
			Expect(config.Iterations).To(Equal(1000))
			Expect(config.WriteProbability).To(Equal(0.5))
			Expect(config.ValueMin).To(Equal(int64(0)))
			Expect(config.ValueMax).To(Equal(int64(100)))
			Expect(config.CoreCount).To(Equal(2))
			Expect(config.Seed).To(Equal(int64(0)))
		})

		It("should validate cleanly", func() {
			Expect(runner.DefaultConfig().Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		It("should reject non-positive iterations", func() {
			config := runner.DefaultConfig()
			config.Iterations = -1
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject write probabilities outside [0, 1]", func() {
			config := runner.DefaultConfig()
			config.WriteProbability = 1.5
			Expect(config.Validate()).NotTo(Succeed())

			config.WriteProbability = -0.1
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject an inverted value range", func() {
			config := runner.DefaultConfig()
			config.ValueMin = 10
			config.ValueMax = 5
			Expect(config.Validate()).NotTo(Succeed())
		})

		It("should reject core counts other than two", func() {
			config := runner.DefaultConfig()
			config.CoreCount = 1
			Expect(config.Validate()).NotTo(Succeed())
		})
	})

	Describe("Clone", func() {
		It("should be independent of the original", func() {
			original := runner.DefaultConfig()
			clone := original.Clone()

			clone.Iterations = 50
			Expect(original.Iterations).To(Equal(1000))
			Expect(clone.Iterations).To(Equal(50))
		})
	})

	Describe("File Operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "cohsim-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should save and load config", func() {
			original := runner.DefaultConfig()
			original.Iterations = 250
			original.Seed = 7

			path := filepath.Join(tempDir, "sim.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := runner.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Iterations).To(Equal(250))
			Expect(loaded.Seed).To(Equal(int64(7)))
		})

		It("should keep defaults for fields absent from the file", func() {
			path := filepath.Join(tempDir, "partial.json")
			err := os.WriteFile(path, []byte(`{"iterations": 10}`), 0644)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := runner.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Iterations).To(Equal(10))
			Expect(loaded.WriteProbability).To(Equal(0.5))
			Expect(loaded.CoreCount).To(Equal(2))
		})

		It("should return error for non-existent file", func() {
			_, err := runner.LoadConfig(filepath.Join(tempDir, "missing.json"))
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			err := os.WriteFile(path, []byte("not valid json"), 0644)
			Expect(err).NotTo(HaveOccurred())

			_, err = runner.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
