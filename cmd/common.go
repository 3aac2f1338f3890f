/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/valpere/horoscope/internal/config"
	"github.com/valpere/horoscope/internal/translator"
)

// buildServices constructs the translation chain from cfg.Services, in order.
// Unknown names are logged and skipped.
func buildServices(cfg *config.Config, logger *zap.Logger) ([]translator.Capability, error) {
	var list []translator.Capability

	for _, name := range cfg.Services {
		switch name {
		case "mymemory":
			list = append(list, translator.FromService(translator.NewMyMemoryService(cfg.MyMemoryEmail)))
		case "google":
			list = append(list, translator.FromService(translator.NewGoogleService(cfg.GoogleCredentials, cfg.GoogleProject)))
		case "ollama":
			list = append(list, translator.FromService(translator.NewOllamaTranslator(cfg.OllamaURL, cfg.OllamaModel)))
		default:
			logger.Warn("unknown translation service, skipping", zap.String("service", name))
		}
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("no valid services configured")
	}
	return list, nil
}
