// Copyright (C) 2025 the openstig authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/openstig/stigman/database/models"
	"github.com/openstig/stigman/dtos"
	"github.com/openstig/stigman/shared"
	"github.com/openstig/stigman/utils"
)

type assetRepository struct {
	db shared.DB
}

func NewAssetRepository(db shared.DB) *assetRepository {
	return &assetRepository{db: db}
}

// Query runs the asset read path: projections and filters are combined with
// the caller's visibility scope into one statement. Execution errors
// propagate unmodified; a missing single asset yields an empty slice.
func (repository *assetRepository) Query(projections []dtos.Projection, filter dtos.AssetFilter, scope shared.Scope, user shared.User) ([]dtos.AssetRow, error) {
	q := buildAssetQuery(projections, filter, scope, user)

	var rows []dtos.AssetRow
	if err := repository.db.Raw(q.SQL(), q.Binds()).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// benchmarkSets computes the benchmark assignments to insert and the subset
// whose existing rows must survive the delete pass. A benchmark named only in
// benchmarkIds is being re-affirmed: deleting its assignment would cascade
// away reviewer mappings the caller never asked to touch. A benchmark named
// in stigReviewers is about to have its reviewers replaced anyway, so its
// assignment may be dropped and recreated.
func benchmarkSets(benchmarkIDs []string, reviewers []dtos.StigReviewerAssignment) (insertSet []string, preserveSet []string) {
	reviewerBenchmarks := utils.Map(reviewers, func(r dtos.StigReviewerAssignment) string {
		return r.BenchmarkID
	})

	insertSet = utils.Uniq(append(append([]string{}, benchmarkIDs...), reviewerBenchmarks...))
	preserveSet = utils.Filter(utils.Uniq(benchmarkIDs), func(benchmarkID string) bool {
		return !utils.Contains(reviewerBenchmarks, benchmarkID)
	})
	return insertSet, preserveSet
}

// WriteAsset writes the scalar asset fields and reconciles the package,
// benchmark and reviewer relationships inside one transaction. On any
// failure the whole transaction rolls back; no partial relationship state is
// ever observable. Returns the written asset's id.
func (repository *assetRepository) WriteAsset(action dtos.WriteAction, assetID *int64, payload dtos.AssetWrite) (int64, error) {
	var id int64

	err := repository.db.Transaction(func(tx *gorm.DB) error {
		switch action {
		case dtos.WriteActionCreate:
			asset := models.Asset{
				Name:       payload.Name,
				IP:         payload.IP,
				Dept:       payload.Dept,
				Nonnetwork: payload.Nonnetwork != nil && *payload.Nonnetwork,
				Scanexempt: payload.Scanexempt != nil && *payload.Scanexempt,
			}
			if err := tx.Create(&asset).Error; err != nil {
				return err
			}
			id = asset.AssetID
		case dtos.WriteActionUpdate, dtos.WriteActionReplace:
			if assetID == nil {
				return fmt.Errorf("%s requires an asset id", action)
			}
			id = *assetID
			updates := payload.ScalarUpdates(action)
			if len(updates) > 0 {
				if err := tx.Model(&models.Asset{}).Where("asset_id = ?", id).Updates(updates).Error; err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("invalid write action %d", action)
		}

		if err := repository.reconcilePackages(tx, action, id, payload.PackageIDs); err != nil {
			return err
		}
		return repository.reconcileStigAssignments(tx, action, id, payload)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

// reconcilePackages applies the package assignment set. Replace semantics are
// plain delete-then-insert; inserts are duplicate-safe.
func (repository *assetRepository) reconcilePackages(tx shared.DB, action dtos.WriteAction, assetID int64, packageIDs *[]int64) error {
	if action == dtos.WriteActionReplace {
		if err := tx.Where("asset_id = ?", assetID).Delete(&models.AssetPackage{}).Error; err != nil {
			return err
		}
	}
	if packageIDs == nil || len(*packageIDs) == 0 {
		return nil
	}

	rows := utils.Map(utils.Uniq(*packageIDs), func(packageID int64) models.AssetPackage {
		return models.AssetPackage{AssetID: assetID, PackageID: packageID}
	})
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

// reconcileStigAssignments synchronizes the benchmark assignments and their
// reviewer mappings to the desired state in the payload. An absent key means
// "do not touch"; see benchmarkSets for the cascade-safety rule.
func (repository *assetRepository) reconcileStigAssignments(tx shared.DB, action dtos.WriteAction, assetID int64, payload dtos.AssetWrite) error {
	var benchmarkIDs []string
	if payload.BenchmarkIDs != nil {
		benchmarkIDs = *payload.BenchmarkIDs
	}
	var reviewers []dtos.StigReviewerAssignment
	if payload.StigReviewers != nil {
		reviewers = *payload.StigReviewers
	}

	insertSet, preserveSet := benchmarkSets(benchmarkIDs, reviewers)

	if action == dtos.WriteActionReplace || payload.BenchmarkIDs != nil || payload.StigReviewers != nil {
		del := tx.Where("asset_id = ?", assetID)
		if len(preserveSet) > 0 {
			del = del.Where("benchmark_id <> ALL(?)", pq.Array(preserveSet))
		}
		// cascades into user_stig_asset_map by referential design
		if err := del.Delete(&models.StigAssignment{}).Error; err != nil {
			return err
		}
	}

	if len(insertSet) > 0 {
		rows := utils.Map(insertSet, func(benchmarkID string) models.StigAssignment {
			return models.StigAssignment{AssetID: assetID, BenchmarkID: benchmarkID}
		})
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
			return err
		}
	}

	for _, entry := range reviewers {
		// full replace per named benchmark. This also covers the case where
		// the assignment row itself survived the delete pass above.
		if err := tx.Exec(`DELETE FROM user_stig_asset_map
			WHERE sa_id IN (SELECT sa_id FROM stig_asset_map WHERE asset_id = ? AND benchmark_id = ?)`,
			assetID, entry.BenchmarkID).Error; err != nil {
			return err
		}
		for _, userID := range entry.UserIDs {
			if err := tx.Exec(`INSERT INTO user_stig_asset_map (user_id, sa_id)
				SELECT ?, sa_id FROM stig_asset_map WHERE asset_id = ? AND benchmark_id = ?
				ON CONFLICT (user_id, sa_id) DO NOTHING`,
				userID, assetID, entry.BenchmarkID).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// Delete removes the asset row. Relationship rows go with it via the
// database's foreign key cascades.
func (repository *assetRepository) Delete(assetID int64) error {
	return repository.db.Where("asset_id = ?", assetID).Delete(&models.Asset{}).Error
}
