// check_config 校验嵌入的 YAML 配置并打印摘要
//
// 也可以校验磁盘上的文件：
//
//	go run ./cmd/check_config --tuning ./my_tuning.yaml
package main

import (
	"crypto/md5"
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/invasion/data"
	"github.com/gonewx/invasion/pkg/config"
	"github.com/gonewx/invasion/pkg/embedded"
)

var (
	tuningFile  = flag.String("tuning", "", "数值配置文件路径（为空时使用嵌入的 data/tuning.yaml）")
	catalogFile = flag.String("catalog", "", "商店目录文件路径（为空时使用嵌入的 data/catalog.yaml）")
)

func main() {
	flag.Parse()
	embedded.Init(data.FS)

	tuningData, err := readConfig(*tuningFile, "data/tuning.yaml")
	if err != nil {
		fail(err)
	}
	tuning, err := config.ParseTuning(tuningData)
	if err != nil {
		fail(fmt.Errorf("tuning: %w", err))
	}

	catalogData, err := readConfig(*catalogFile, "data/catalog.yaml")
	if err != nil {
		fail(err)
	}
	catalog, err := config.ParseCatalog(catalogData)
	if err != nil {
		fail(fmt.Errorf("catalog: %w", err))
	}

	fmt.Printf("tuning  MD5 %x (%d bytes)\n", md5.Sum(tuningData), len(tuningData))
	fmt.Printf("catalog MD5 %x (%d bytes)\n", md5.Sum(catalogData), len(catalogData))

	fmt.Printf("arena %.0fx%.0f, boss on wave %d with %d HP\n",
		tuning.Arena.Width, tuning.Arena.Height, tuning.Boss.Wave, tuning.Boss.Health)
	for wave := 1; wave < tuning.Boss.Wave; wave++ {
		fmt.Printf("  wave %2d  quota %2d  banner %q\n", wave, tuning.Quota(wave), catalog.WaveBanner(wave, tuning.Boss.Wave))
	}

	fmt.Println("skins:")
	for _, s := range catalog.Skins {
		fmt.Printf("  %-10s %-16s %4d coins\n", s.Key, s.Name, s.Price)
	}
	fmt.Println("upgrades:")
	for _, kind := range config.UpgradeKinds {
		for i, tier := range catalog.Upgrades[kind] {
			fmt.Printf("  %-15s level %d  value %4d  price %4d\n", kind, i+1, tier.Value, tier.Price)
		}
	}
}

func readConfig(path, embeddedPath string) ([]byte, error) {
	if path == "" {
		return embedded.ReadFile(embeddedPath)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
