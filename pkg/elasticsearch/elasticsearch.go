// Copyright (c) 2026 Tigera, Inc. All rights reserved.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package elasticsearch

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	es "github.com/elastic/go-elasticsearch/v7"
	"github.com/sethvargo/go-retry"
	log "github.com/sirupsen/logrus"

	"github.com/ShreyashThok24731/cs744-project/pkg/config"
	"github.com/ShreyashThok24731/cs744-project/pkg/results"
	"github.com/ShreyashThok24731/cs744-project/pkg/utils"
)

const maxRetries = 3

func connect(ctx context.Context, cfg config.Config, webClient *http.Client) (*es.Client, error) {
	var transport http.RoundTripper
	if webClient != nil && webClient.Transport != nil {
		transport = webClient.Transport
	} else {
		transport = &http.Transport{TLSClientConfig: &tls.Config{}}
	}
	escfg := es.Config{
		Addresses: []string{
			cfg.ESUrl,
		},
		Transport: transport,
	}
	if cfg.ESAPIKey == "" {
		escfg.Username = cfg.ESUser
		escfg.Password = cfg.ESPassword
	} else {
		escfg.APIKey = cfg.ESAPIKey
	}
	client, err := es.NewClient(escfg)
	if err != nil {
		log.Errorf("error creating the client: %s", err)
		return nil, err
	}
	response, err := client.Ping(client.Ping.WithContext(ctx))
	if err != nil {
		log.Warnf("error contacting the server: %s", err)
		return nil, err
	}
	defer response.Body.Close()
	if response.IsError() {
		return nil, fmt.Errorf("ping failed: %s", response.Status())
	}
	host, err := utils.ExtractDomainFromURL(cfg.ESUrl)
	if err != nil {
		host = cfg.ESUrl
	}
	log.Infof("Connected to ElasticSearch: %s", host)
	return client, nil
}

func createESDoc(result results.Result) (string, error) {
	doc, err := json.Marshal(result)
	if err != nil {
		log.Errorf("error marshaling document: %s", err)
		return "", err
	}
	return string(doc), nil
}

// esIndexName returns the daily index for a workload. Index names must be lower case.
func esIndexName(workload string, now time.Time) string {
	return utils.IndexName("benchmark_reports", workload, now.Format("2006-01-02"))
}

func indexDoc(ctx context.Context, client *es.Client, esIndex string, doc string, dryrun bool) error {
	if dryrun {
		log.Infof("Dryrun: Indexing document to ElasticSearch %s: %s", esIndex, doc)
		return nil
	}
	log.Debugf("Indexing document to ElasticSearch %s: %s", esIndex, doc)
	b := retry.WithMaxRetries(maxRetries, retry.NewFibonacci(1*time.Second))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		response, err := client.Index(esIndex, strings.NewReader(doc), client.Index.WithContext(ctx))
		if err != nil {
			log.WithError(err).Warn("error indexing document, retrying")
			return retry.RetryableError(err)
		}
		defer response.Body.Close()
		if response.IsError() {
			err = fmt.Errorf("index request failed: %s", response.Status())
			if response.StatusCode >= 500 || response.StatusCode == http.StatusTooManyRequests {
				log.WithError(err).Warn("retrying")
				return retry.RetryableError(err)
			}
			return err
		}
		log.Infof("Indexed %s result: %s", esIndex, response.Status())
		return nil
	})
}

// hasCredentials reports whether cfg has either an API key or a user and password.
func hasCredentials(cfg config.Config) bool {
	return cfg.ESAPIKey != "" || (cfg.ESUser != "" && cfg.ESPassword != "")
}

// UploadResult uploads a workload result to ElasticSearch
func UploadResult(ctx context.Context, cfg config.Config, webClient *http.Client, result results.Result, dryrun bool) error {
	if cfg.ESUrl == "" {
		log.Debug("No ElasticSearch URL provided, skipping upload")
		return nil
	}
	if !hasCredentials(cfg) {
		log.Warn("Missing ElasticSearch credentials, skipping upload")
		return nil
	}
	doc, err := createESDoc(result)
	if err != nil {
		log.Errorf("error creating document: %s", err)
		return err
	}
	client, err := connect(ctx, cfg, webClient)
	if err != nil {
		log.Errorf("error connecting to ElasticSearch: %s", err)
		return err
	}
	return indexDoc(ctx, client, esIndexName(result.Workload, time.Now()), doc, dryrun)
}
